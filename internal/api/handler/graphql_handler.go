package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"github.com/d60-Lab/graphql-blog/pkg/response"
)

type Handler struct {
	relay *relay.Handler
	db    *gorm.DB
}

func New(schema *graphql.Schema, db *gorm.DB) *Handler {
	return &Handler{relay: &relay.Handler{Schema: schema}, db: db}
}

// GraphQL POST /graphql，请求体与响应均为标准 GraphQL JSON
func (h *Handler) GraphQL(c *gin.Context) {
	h.relay.ServeHTTP(c.Writer, c.Request)
}

// Playground GET /graphql 返回 GraphiQL 页面
func (h *Handler) Playground(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(graphiqlPage))
}

// Health GET /healthz 带数据库连通性检查
func (h *Handler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"status": "up"})
}

const graphiqlPage = `<!DOCTYPE html>
<html>
<head>
  <title>GraphiQL</title>
  <style>html, body, #graphiql { height: 100%; margin: 0; }</style>
  <link rel="stylesheet" href="https://unpkg.com/graphiql/graphiql.min.css" />
</head>
<body>
  <div id="graphiql">Loading...</div>
  <script src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
  <script src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
  <script src="https://unpkg.com/graphiql/graphiql.min.js"></script>
  <script>
    ReactDOM.createRoot(document.getElementById('graphiql')).render(
      React.createElement(GraphiQL, {
        fetcher: GraphiQL.createFetcher({ url: '/graphql' }),
      })
    );
  </script>
</body>
</html>`
