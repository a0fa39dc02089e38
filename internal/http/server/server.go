package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"filmorate/internal/config"
	"filmorate/internal/domain/models"
	"filmorate/internal/http/handlers/films/add_like"
	filmcreate "filmorate/internal/http/handlers/films/create"
	"filmorate/internal/http/handlers/films/delete_like"
	filmfindall "filmorate/internal/http/handlers/films/find_all"
	filmfind "filmorate/internal/http/handlers/films/find_by_id"
	"filmorate/internal/http/handlers/films/popular"
	filmupdate "filmorate/internal/http/handlers/films/update"
	genrefindall "filmorate/internal/http/handlers/genres/find_all"
	genrefind "filmorate/internal/http/handlers/genres/find_by_id"
	"filmorate/internal/http/handlers/middlewares/compress"
	"filmorate/internal/http/handlers/middlewares/logger"
	"filmorate/internal/http/handlers/middlewares/ratelimit"
	"filmorate/internal/http/handlers/middlewares/recovery"
	mpafindall "filmorate/internal/http/handlers/mpa/find_all"
	mpafind "filmorate/internal/http/handlers/mpa/find_by_id"
	"filmorate/internal/http/handlers/system/ping"
	"filmorate/internal/http/handlers/users/add_friend"
	"filmorate/internal/http/handlers/users/common_friends"
	usercreate "filmorate/internal/http/handlers/users/create"
	"filmorate/internal/http/handlers/users/delete_friend"
	"filmorate/internal/http/handlers/users/delete_user"
	userfindall "filmorate/internal/http/handlers/users/find_all"
	userfind "filmorate/internal/http/handlers/users/find_by_id"
	"filmorate/internal/http/handlers/users/list_friends"
	userupdate "filmorate/internal/http/handlers/users/update"
	"filmorate/internal/http/httputils"
	"filmorate/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type UserService interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id int64) error
	AddFriend(ctx context.Context, userID, friendID int64) error
	DeleteFriend(ctx context.Context, userID, friendID int64) error
	GetUserFriends(ctx context.Context, userID int64) ([]models.User, error)
	FindCommonFriends(ctx context.Context, userID, otherID int64) ([]models.User, error)
}

type FilmService interface {
	Create(ctx context.Context, film models.Film) (models.Film, error)
	Update(ctx context.Context, film models.Film) (models.Film, error)
	FindByID(ctx context.Context, id int64) (models.Film, error)
	FindAll(ctx context.Context) ([]models.Film, error)
	AddLike(ctx context.Context, filmID, userID int64) error
	DeleteLike(ctx context.Context, filmID, userID int64) error
	GetPopularFilms(ctx context.Context, count int) ([]models.Film, error)
	FindAllMpa(ctx context.Context) ([]models.Mpa, error)
	FindMpaByID(ctx context.Context, id int) (models.Mpa, error)
	FindAllGenres(ctx context.Context) ([]models.Genre, error)
	FindGenreByID(ctx context.Context, id int) (models.Genre, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	httpServer  *http.Server
	router      *mux.Router
	log         *zerolog.Logger
	userService UserService
	filmService FilmService
	storage     Pinger
	metrics     *metrics.Metrics
	cfg         config.Config
}

func NewServer(
	log *zerolog.Logger,
	cfg config.Config,
	users UserService,
	films FilmService,
	storage Pinger,
	m *metrics.Metrics,
) (*Server, error) {
	if cfg.ServerAddress == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if users == nil || films == nil {
		return nil, errors.New("service cannot be nil")
	}
	if storage == nil {
		return nil, errors.New("storage cannot be nil")
	}
	if m == nil {
		m = metrics.New()
	}

	s := &Server{
		router:      mux.NewRouter(),
		cfg:         cfg,
		log:         log,
		userService: users,
		filmService: films,
		storage:     storage,
		metrics:     m,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	var limiter *rate.Limiter
	if s.cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(s.cfg.RateLimitRPS), s.cfg.RateLimitBurst)
	}

	// метрики снаружи, чтобы учитывать и отказы лимитера
	chain := []mux.MiddlewareFunc{
		s.metrics.Middleware(),
		logger.MiddlewareLogging(s.log),
		recovery.MiddlewareRecovery(),
		ratelimit.MiddlewareRateLimit(limiter),
		compress.MiddlewareCompressing(),
	}
	s.router.Use(chain...)

	// mux не пропускает 404 и 405 через Use, поэтому цепочка навешивается вручную
	s.router.NotFoundHandler = withMiddlewares(chain, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONError(w, http.StatusNotFound, httputils.CategoryNotFound, "route "+r.URL.Path+" not found")
	}))
	s.router.MethodNotAllowedHandler = withMiddlewares(chain, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONError(w, http.StatusMethodNotAllowed, httputils.CategoryInternal, "method not allowed")
	}))

	/*
		Service routes
	*/
	s.router.HandleFunc("/ping", ping.HandlerPing(s.storage)).Methods(http.MethodGet)
	s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	/*
		Films
	*/
	s.router.HandleFunc("/films", filmfindall.HandlerFindAllFilms(s.filmService)).Methods(http.MethodGet)
	s.router.HandleFunc("/films", filmcreate.HandlerCreateFilm(s.filmService)).Methods(http.MethodPost)
	s.router.HandleFunc("/films", filmupdate.HandlerUpdateFilm(s.filmService)).Methods(http.MethodPut)
	// /films/popular регистрируется раньше /films/{id}, иначе его перехватит шаблон
	s.router.HandleFunc("/films/popular", popular.HandlerPopularFilms(s.filmService)).Methods(http.MethodGet)
	s.router.HandleFunc("/films/{id}", filmfind.HandlerFindFilm(s.filmService)).Methods(http.MethodGet)
	s.router.HandleFunc("/films/{id}/like/{userId}", add_like.HandlerAddLike(s.filmService)).Methods(http.MethodPut)
	s.router.HandleFunc("/films/{id}/like/{userId}", delete_like.HandlerDeleteLike(s.filmService)).Methods(http.MethodDelete)

	/*
		Users
	*/
	s.router.HandleFunc("/users", userfindall.HandlerFindAllUsers(s.userService)).Methods(http.MethodGet)
	s.router.HandleFunc("/users", usercreate.HandlerCreateUser(s.userService)).Methods(http.MethodPost)
	s.router.HandleFunc("/users", userupdate.HandlerUpdateUser(s.userService)).Methods(http.MethodPut)
	s.router.HandleFunc("/users/{id}", userfind.HandlerFindUser(s.userService)).Methods(http.MethodGet)
	s.router.HandleFunc("/users/{id}", delete_user.HandlerDeleteUser(s.userService)).Methods(http.MethodDelete)
	s.router.HandleFunc("/users/{id}/friends", list_friends.HandlerListFriends(s.userService)).Methods(http.MethodGet)
	s.router.HandleFunc("/users/{id}/friends/common/{otherId}", common_friends.HandlerCommonFriends(s.userService)).Methods(http.MethodGet)
	s.router.HandleFunc("/users/{id}/friends/{friendId}", add_friend.HandlerAddFriend(s.userService)).Methods(http.MethodPut)
	s.router.HandleFunc("/users/{id}/friends/{friendId}", delete_friend.HandlerDeleteFriend(s.userService)).Methods(http.MethodDelete)

	/*
		Reference data
	*/
	s.router.HandleFunc("/genres", genrefindall.HandlerFindAllGenres(s.filmService)).Methods(http.MethodGet)
	s.router.HandleFunc("/genres/{id}", genrefind.HandlerFindGenre(s.filmService)).Methods(http.MethodGet)
	s.router.HandleFunc("/mpa", mpafindall.HandlerFindAllMpa(s.filmService)).Methods(http.MethodGet)
	s.router.HandleFunc("/mpa/{id}", mpafind.HandlerFindMpa(s.filmService)).Methods(http.MethodGet)
}

// withMiddlewares оборачивает handler в том же порядке, что и router.Use:
// первый middleware внешний
func withMiddlewares(chain []mux.MiddlewareFunc, h http.Handler) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i].Middleware(h)
	}
	return h
}

// Handler нужен тестам, чтобы гонять запросы через роутер без сети
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}
