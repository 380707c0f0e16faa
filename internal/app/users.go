package app

import (
	"net/http"
	"strings"

	"github.com/metinatakli/seat-ledger/api"
	"github.com/metinatakli/seat-ledger/internal/domain"
)

func (app *Application) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	app.createUser(w, r, domain.NewCustomer, app.registry.AddCustomer)
}

func (app *Application) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	app.createUser(w, r, domain.NewEmployee, app.registry.AddEmployee)
}

func (app *Application) createUser(
	w http.ResponseWriter,
	r *http.Request,
	newUser func(name string) domain.User,
	register func(domain.User) error) {

	var input api.CreateUserRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user := newUser(strings.TrimSpace(input.Name))

	err = register(user)
	if err != nil {
		app.registryErrorResponse(w, r, err)
		return
	}

	resp := api.UserResponse{
		Id:   user.ID,
		Name: user.Name,
		Role: api.Role(user.Role),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
