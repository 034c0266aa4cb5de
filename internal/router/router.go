package router

import (
	"database/sql"
	"net/http"
	"os"

	"dog-ratings/internal/adapters/geography/usgeo"
	mem "dog-ratings/internal/adapters/storage/memory"
	pg "dog-ratings/internal/adapters/storage/postgres"
	"dog-ratings/internal/domain/dogs"
	"dog-ratings/internal/domain/people"
	"dog-ratings/internal/domain/ratings"
	"dog-ratings/internal/middleware"
	"dog-ratings/internal/platform/logger"
	"dog-ratings/internal/ports/geography"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: validador de estados. Si no viene, tabla estática local
	// (o el servicio remoto si GEO_BASE_URL está seteado).
	Geo geography.StateValidator

	// Opcional: logger. Si no viene, se arma desde env.
	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	var (
		dogRepo    dogs.Repository
		peopleRepo people.Repository
		ratingRepo ratings.Repository
	)

	if db != nil {
		dogRepo = pg.NewDogsRepo(db)
		peopleRepo = pg.NewPeopleRepo(db)
		ratingRepo = pg.NewRatingsRepo(db)
	} else {
		dogRepo = mem.NewDogsRepo()
		peopleRepo = mem.NewPeopleRepo()
		ratingRepo = mem.NewRatingsRepo()
	}

	geo := opts.Geo
	if geo == nil {
		geo = geoFromEnv()
	}

	// Services por módulo
	dogsSvc := dogs.NewService(dogRepo)
	peopleSvc := people.NewService(peopleRepo, geo)
	ratingsSvc := ratings.NewService(ratingRepo, dogsSvc.Exists, peopleSvc.Exists)

	// Rutas por módulo
	dogs.RegisterRoutes(r, dogsSvc)
	people.RegisterRoutes(r, peopleSvc)
	ratings.RegisterRoutes(r, ratingsSvc)

	return r
}

// geoFromEnv arma el validador de estados: servicio remoto si GEO_BASE_URL
// está configurado, tabla estática embebida si no.
func geoFromEnv() geography.StateValidator {
	baseURL := os.Getenv("GEO_BASE_URL")
	if baseURL == "" {
		return usgeo.NewStatic()
	}

	client, err := usgeo.NewClient(usgeo.Config{
		BaseURL: baseURL,
		APIKey:  os.Getenv("GEO_API_KEY"),
	})
	if err != nil {
		return usgeo.NewStatic()
	}
	return usgeo.NewResolver(client)
}
