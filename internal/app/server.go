package app

import (
	"github.com/gorilla/mux"

	"webhook-guard/internal/server"
)

// RunServer builds the HTTP route table and wraps it in a server instance
func (app *App) RunServer() *server.Server {
	router := mux.NewRouter()
	SetupRoutes(router, app.Handlers, app.Guard, app.Metrics)

	return server.New(router, app.Config.Port, app.Config.TLSCertFile, app.Config.TLSKeyFile)
}
