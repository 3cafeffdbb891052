package actions

import (
	"fmt"

	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/buffalo-pop/v3/pop/popmw"
	contenttype "github.com/gobuffalo/mw-contenttype"
	i18n "github.com/gobuffalo/mw-i18n/v2"
	paramlogger "github.com/gobuffalo/mw-paramlogger"
	"github.com/gorilla/sessions"
	"github.com/rs/cors"

	"github.com/silverleaf-labs/persons-api/actions/middleware"
	"github.com/silverleaf-labs/persons-api/api"
	"github.com/silverleaf-labs/persons-api/domain"
	"github.com/silverleaf-labs/persons-api/listeners"
	"github.com/silverleaf-labs/persons-api/locales"
	"github.com/silverleaf-labs/persons-api/log"
	"github.com/silverleaf-labs/persons-api/models"
)

var app *buffalo.App

// App is where all routes and middleware for buffalo should be defined.
// This is the nerve center of your application.
//
// Routing, middleware, groups, etc... are declared TOP -> DOWN.
// This means if you add a middleware to `app` *after* declaring a
// group, that group will NOT have that new middleware. The same
// is true of resource declarations as well.
func App() *buffalo.App {
	if app == nil {
		app = buffalo.New(buffalo.Options{
			Env:  domain.Env.GoEnv,
			Addr: fmt.Sprintf("0.0.0.0:%d", domain.Env.ServerPort),
			PreWares: []buffalo.PreWare{
				cors.New(cors.Options{
					AllowCredentials: true,
					AllowedOrigins:   []string{domain.Env.UIURL},
					AllowedMethods:   []string{"HEAD", "GET", "POST", "PUT", "PATCH", "DELETE"},
					AllowedHeaders:   []string{"*"},
				}).Handler,
			},
			SessionName:  "_persons_session",
			SessionStore: sessions.NewCookieStore([]byte(domain.Env.SessionSecret)),
		})

		var err error
		domain.T, err = i18n.New(locales.FS, "en")
		if err != nil {
			_ = app.Stop(err)
		}
		app.Use(domain.T.Middleware())

		if hook := log.NewSentryHook(domain.Env.GoEnv, ""); hook != nil {
			domain.Logger.AddHook(hook)
		}
		app.Use(log.SentryMiddleware)

		// Log request parameters (filters apply).
		app.Use(paramlogger.ParameterLogger)

		// Set the request content type to JSON
		app.Use(contenttype.Set("application/json"))

		// Wraps each request in a transaction.
		app.Use(popmw.Transaction(models.DB))

		registerCustomErrorHandler(app)

		listeners.RegisterListeners()

		listChain := middleware.Chain(
			middleware.NewResponseHeader(),
			&middleware.SearchAllowList{},
			&middleware.ListLogger{},
		)
		app.GET("/", listChain(personsList))

		personsGroup := app.Group("/persons")
		personsGroup.Use(middleware.Chain(middleware.NewResponseHeader()))

		personsGroup.GET("/", middleware.Chain(
			&middleware.SearchAllowList{},
			&middleware.ListLogger{},
		)(personsList))

		personsGroup.GET("/create", personsCreateForm)
		personsGroup.POST("/create", middleware.Chain(
			&middleware.FeatureGate{},
			&middleware.PersonFormValidation{NewRequest: func() any { return &api.PersonCreateRequest{} }},
		)(personsCreateSubmit))

		personsGroup.GET("/edit/{id}", personsEditForm)
		personsGroup.POST("/edit/{id}", middleware.Chain(
			&middleware.TokenAuthorization{},
			&middleware.PersonFormValidation{NewRequest: func() any { return &api.PersonUpdateRequest{} }},
		)(personsEditSubmit))

		personsGroup.GET("/delete/{id}", personsDeleteForm)
		personsGroup.POST("/delete/{id}", personsDeleteSubmit)

		personsGroup.GET("/personspdf", personsPDF)
		personsGroup.GET("/personscsv", personsCSV)
		personsGroup.GET("/personsexcel", personsExcel)

		countriesGroup := app.Group("/countries")
		countriesGroup.GET("/", countriesList)
		countriesGroup.GET("/uploadfromexcel", countriesUploadForm)
		countriesGroup.POST("/uploadfromexcel", countriesUploadFromExcel)
	}

	return app
}
