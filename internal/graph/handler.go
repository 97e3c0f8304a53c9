package graph

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
)

// request is the standard GraphQL-over-HTTP POST body
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler executes GraphQL requests against the schema. Session state is
// read from the request context, where the auth middleware put it.
func Handler(schema *graphql.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		resp := schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)
		c.JSON(http.StatusOK, resp)
	}
}

// graphiqlPage is a minimal in-browser IDE pointed at the endpoint.
// Served only in development.
const graphiqlPage = `<!DOCTYPE html>
<html>
<head>
	<title>Library GraphiQL</title>
	<link rel="stylesheet" href="https://unpkg.com/graphiql/graphiql.min.css" />
</head>
<body style="margin:0">
	<div id="graphiql" style="height:100vh"></div>
	<script crossorigin src="https://unpkg.com/react/umd/react.production.min.js"></script>
	<script crossorigin src="https://unpkg.com/react-dom/umd/react-dom.production.min.js"></script>
	<script crossorigin src="https://unpkg.com/graphiql/graphiql.min.js"></script>
	<script>
		const fetcher = GraphiQL.createFetcher({ url: '/graphql' });
		ReactDOM.render(
			React.createElement(GraphiQL, { fetcher: fetcher }),
			document.getElementById('graphiql'),
		);
	</script>
</body>
</html>`

// GraphiQL serves the IDE page
func GraphiQL() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(graphiqlPage))
	}
}
