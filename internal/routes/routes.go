package routes

import (
	"streamhub-backend/internal/handlers"
	"streamhub-backend/internal/realtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Setup wires every API route. The protected middleware guards the routes
// that need a session: catalog mutations on movies and series, reactions,
// logout and the user-facing billing operations.
func Setup(
	app *fiber.App,
	movieHandler *handlers.MovieHandler,
	serieHandler *handlers.SerieHandler,
	genreHandler *handlers.GenreHandler,
	collectionHandler *handlers.CollectionHandler,
	authHandler *handlers.AuthHandler,
	billingHandler *handlers.BillingHandler,
	hub *realtime.Hub,
	protected fiber.Handler,
) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Movie routes - CRUD plus like/dislike toggles
	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.GetAllMovies)
		movies.Get("/:id", movieHandler.GetMovieByID)
		movies.Post("/", protected, movieHandler.CreateMovie)
		movies.Put("/:id", protected, movieHandler.UpdateMovie)
		movies.Delete("/:id", protected, movieHandler.DeleteMovie)
		movies.Post("/:id/like", protected, movieHandler.LikeMovie)
		movies.Post("/:id/dislike", protected, movieHandler.DislikeMovie)
	}

	// Serie routes - CRUD with nested seasons and episodes
	series := v1.Group("/series")
	{
		series.Get("/", serieHandler.GetAllSeries)
		series.Post("/", protected, serieHandler.CreateSerie)
		series.Get("/:slug", serieHandler.GetSerieBySlug)
		series.Put("/:slug", protected, serieHandler.UpdateSerie)
		series.Delete("/:slug", protected, serieHandler.DeleteSerie)
		series.Post("/:slug/like", protected, serieHandler.LikeSerie)
		series.Post("/:slug/dislike", protected, serieHandler.DislikeSerie)

		series.Get("/:slug/seasons", serieHandler.GetSeasons)
		series.Post("/:slug/seasons", protected, serieHandler.CreateSeason)
		series.Get("/:slug/seasons/:seasonSlug", serieHandler.GetSeason)
		series.Put("/:slug/seasons/:seasonSlug", protected, serieHandler.UpdateSeason)
		series.Delete("/:slug/seasons/:seasonSlug", protected, serieHandler.DeleteSeason)

		series.Get("/:slug/seasons/:seasonSlug/episodes", serieHandler.GetEpisodes)
		series.Post("/:slug/seasons/:seasonSlug/episodes", protected, serieHandler.CreateEpisode)
		series.Get("/:slug/seasons/:seasonSlug/episodes/:episodeSlug", serieHandler.GetEpisode)
		series.Put("/:slug/seasons/:seasonSlug/episodes/:episodeSlug", protected, serieHandler.UpdateEpisode)
		series.Delete("/:slug/seasons/:seasonSlug/episodes/:episodeSlug", protected, serieHandler.DeleteEpisode)
	}

	// Genre routes
	genres := v1.Group("/genres")
	{
		genres.Get("/", genreHandler.GetAllGenres)
		genres.Get("/:id", genreHandler.GetGenreByID)
		genres.Post("/", genreHandler.CreateGenre)
		genres.Put("/:id", genreHandler.UpdateGenre)
		genres.Delete("/:id", genreHandler.DeleteGenre)
	}

	// Collection routes
	collections := v1.Group("/collections")
	{
		collections.Get("/", collectionHandler.GetAllCollections)
		collections.Get("/:id", collectionHandler.GetCollectionByID)
		collections.Post("/", collectionHandler.CreateCollection)
		collections.Put("/:id", collectionHandler.UpdateCollection)
		collections.Delete("/:id", collectionHandler.DeleteCollection)
	}

	// Auth routes - user sessions and the separate admin account space
	auth := v1.Group("/auth")
	{
		auth.Post("/register", authHandler.RegisterUser)
		auth.Post("/login", authHandler.LoginUser)
		// A logout link sent to a victim must not clear their session.
		auth.Post("/logout", protected, authHandler.Logout)
	}

	adminAuth := v1.Group("/admin/auth")
	{
		adminAuth.Post("/register", authHandler.RegisterAdmin)
		adminAuth.Post("/login", authHandler.LoginAdmin)
		adminAuth.Post("/logout", protected, authHandler.Logout)
	}

	// Billing routes - plans are public reads, subscription ops need a session
	plans := v1.Group("/plans")
	{
		plans.Get("/", billingHandler.GetAllPlans)
		plans.Post("/", billingHandler.CreatePlan)
		plans.Delete("/:id", billingHandler.DeletePlan)
	}

	billing := v1.Group("/billing")
	{
		billing.Post("/webhook", billingHandler.HandleWebhook)
		billing.Post("/checkout/:planId", protected, billingHandler.CreateCheckoutSession)
		billing.Get("/subscription", protected, billingHandler.GetSubscription)
		billing.Put("/subscription/:planId", protected, billingHandler.UpdateSubscription)
		billing.Delete("/subscription", protected, billingHandler.CancelSubscription)
	}

	// Realtime new-movie notifications
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(hub.Handler()))
}
