package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/seat-ledger/api"
)

func (app *Application) GetApiSpec(w http.ResponseWriter, r *http.Request) {
	swagger, err := api.GetSwagger()
	if err != nil {
		app.serverErrorResponse(w, r, fmt.Errorf("failed to load embedded OpenAPI spec: %w", err))
		return
	}

	err = app.writeJSON(w, http.StatusOK, swagger, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
