package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/provhatrahman/Ahwaaz/internal/config"
	artistssvc "github.com/provhatrahman/Ahwaaz/internal/services/artists"
	authsvc "github.com/provhatrahman/Ahwaaz/internal/services/auth"
	discoverysvc "github.com/provhatrahman/Ahwaaz/internal/services/discovery"
	favoritessvc "github.com/provhatrahman/Ahwaaz/internal/services/favorites"
	feedbacksvc "github.com/provhatrahman/Ahwaaz/internal/services/feedback"
	mediasvc "github.com/provhatrahman/Ahwaaz/internal/services/media"
	reportssvc "github.com/provhatrahman/Ahwaaz/internal/services/reports"
	userssvc "github.com/provhatrahman/Ahwaaz/internal/services/users"
	"github.com/provhatrahman/Ahwaaz/internal/transport/http/handlers"
)

type Dependencies struct {
	AuthService      *authsvc.Service
	ArtistService    *artistssvc.Service
	DiscoveryService *discoverysvc.Service
	FavoriteService  *favoritessvc.Service
	MediaService     *mediasvc.Service
	ReportService    *reportssvc.Service
	FeedbackService  *feedbacksvc.Service
	UserService      *userssvc.Service
	Logger           *zap.Logger
	Config           config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(deps.AuthService)
	artistHandler := handlers.NewArtistHandler(deps.ArtistService)
	discoveryHandler := handlers.NewDiscoveryHandler(deps.DiscoveryService)
	favoriteHandler := handlers.NewFavoriteHandler(deps.FavoriteService)
	mediaHandler := handlers.NewMediaHandler(deps.MediaService)
	reportHandler := handlers.NewReportHandler(deps.ReportService)
	feedbackHandler := handlers.NewFeedbackHandler(deps.FeedbackService)
	meHandler := handlers.NewMeHandler(deps.UserService)

	authMW := AuthMiddleware(deps.AuthService, deps.Logger)
	optionalAuthMW := OptionalAuthMiddleware(deps.AuthService)
	moderatorMW := RequireRole("admin", "moderator")

	r.Get("/healthz", healthHandler.Get)

	r.Route("/v1/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		// Older clients post the provider token to /oauth.
		r.Post("/oauth", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)
		r.With(authMW).Post("/logout", authHandler.Logout)
		r.With(authMW).Post("/logout_all", authHandler.LogoutAll)
	})

	r.Route("/v1", func(r chi.Router) {
		r.With(optionalAuthMW).Get("/artists", discoveryHandler.List)
		r.With(optionalAuthMW).Get("/artists/discover", discoveryHandler.List)
		r.With(optionalAuthMW).Get("/artists/groups", discoveryHandler.Groups)
		r.With(optionalAuthMW).Get("/artists/options", discoveryHandler.Options)
		r.With(optionalAuthMW).Get("/artists/random", discoveryHandler.Random)
		r.With(optionalAuthMW).Get("/artists/{id}", artistHandler.Get)

		r.With(authMW).Post("/artists", artistHandler.Create)
		r.With(authMW).Put("/artists/{id}", artistHandler.Update)
		r.With(authMW).Delete("/artists/{id}", artistHandler.Delete)
		r.With(authMW).Post("/artists/{id}/publish", artistHandler.Publish)
		r.With(authMW).Post("/artists/{id}/unpublish", artistHandler.Unpublish)

		r.With(authMW).Get("/favorites", favoriteHandler.List)
		r.With(authMW).Post("/favorites", favoriteHandler.Add)
		r.With(authMW).Delete("/favorites/{artist_id}", favoriteHandler.Remove)
		r.With(authMW).Put("/artists/{artist_id}/favorite", favoriteHandler.AddByPath)
		r.With(authMW).Delete("/artists/{artist_id}/favorite", favoriteHandler.Remove)

		r.With(authMW).Post("/media/image", mediaHandler.ImageUpload)

		r.With(authMW).Post("/reports", reportHandler.Submit)
		r.With(authMW).Post("/feedback", feedbackHandler.Submit)

		r.Route("/me", func(r chi.Router) {
			r.Use(authMW)
			r.Get("/", meHandler.Me)
			r.Put("/", meHandler.UpdateProfile)
			r.Delete("/", meHandler.DeleteAccount)
			r.Get("/artists", artistHandler.ListMine)
			r.Put("/theme", meHandler.SetTheme)
			r.Get("/preferences", meHandler.Preferences)
			r.Put("/preferences", meHandler.SetPreferences)
			r.Get("/tours/{name}", meHandler.Tour)
			r.Put("/tours/{name}", meHandler.SetTour)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMW, moderatorMW)
			r.Get("/reports", reportHandler.List)
			r.Post("/reports/{id}/status", reportHandler.SetStatus)
			r.Get("/feedback", feedbackHandler.List)
			r.Post("/feedback/{id}/status", feedbackHandler.SetStatus)
		})
	})
}
