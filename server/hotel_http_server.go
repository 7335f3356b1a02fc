package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"hotels-server/middleware"
)

type HotelHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewHotelHttpServer(router *Router, muxRouter *mux.Router, addr string) *HotelHttpServer {
	return &HotelHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
	}
}

// Start registers routes and serves until an interrupt or termination signal
// arrives, then shuts down gracefully so in-flight searches can finish.
func (s *HotelHttpServer) Start() {
	s.router.RegisterRoutes()
	s.muxRouter.Use(middleware.Logging)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		log.Printf("[HotelHttpServer] Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	log.Println("[HotelHttpServer] Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[HotelHttpServer] Server exiting")
}
