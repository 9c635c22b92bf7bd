package routes

import (
	"net/http"

	"miam/auth"
	"miam/favorites"
	"miam/middleware"
	"miam/ratelim"
	"miam/recipes"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/recipepic/*filepath", http.Dir("static/recipepic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.GET("/login", auth.ShowLogin)
	router.POST("/login", ratelim.RateLimit(auth.Login))
	router.GET("/signup", auth.ShowSignup)
	router.POST("/signup", ratelim.RateLimit(auth.Signup))
	router.GET("/logout", auth.Logout)

	router.GET("/forgot_password", auth.ShowForgotPassword)
	router.POST("/forgot_password", ratelim.RateLimit(auth.ForgotPassword))
	router.GET("/reset_password/:username", middleware.RequireResetPending(auth.ShowResetPassword))
	router.POST("/reset_password/:username", middleware.RequireResetPending(auth.ResetPassword))
}

func AddRecipeRoutes(router *httprouter.Router) {
	router.GET("/", middleware.OptionalAuth(recipes.GetRecipes))
	router.GET("/recipe/:id", middleware.OptionalAuth(recipes.GetRecipe))
}

func AddFavoritesRoutes(router *httprouter.Router) {
	router.POST("/add_to_favorites/:id", middleware.Authenticate(favorites.AddToFavorites))
	router.POST("/remove_from_favorites/:id", middleware.Authenticate(favorites.RemoveFromFavorites))
	router.GET("/favorites", middleware.Authenticate(favorites.ListFavorites))
}
