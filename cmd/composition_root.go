package cmd

import (
	"log/slog"
	"time"

	httpin "library/internal/adapters/in/http"
	"library/internal/adapters/out/postgres"
	redisout "library/internal/adapters/out/redis"
	"library/internal/core/application/usecases/commands"
	"library/internal/core/application/usecases/queries"
	"library/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// bookCacheTTL bounds how long a cached book snapshot may lag behind the
// database on the read path.
const bookCacheTTL = 5 * time.Minute

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	redisClient *goredis.Client
	publisher   ports.OrderEventPublisher
	logger      *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *goredis.Client,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		redisClient: redisClient,
		publisher:   publisher,
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireOverdueOrdersCommandHandler() commands.ExpireOverdueOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireOverdueOrdersCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAddBookCommandHandler() commands.AddBookCommandHandler {
	var f commands.BookUoWFactory = FuncBookUoWFactory(func() commands.BookUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddBookCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateBookCommandHandler() commands.UpdateBookCommandHandler {
	var f commands.BookUoWFactory = FuncBookUoWFactory(func() commands.BookUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateBookCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCategoryCommandHandler() commands.AddCategoryCommandHandler {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateAddSubcategoryCommandHandler() commands.AddSubcategoryCommandHandler {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddSubcategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateAddReviewCommandHandler() commands.AddReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBooksQueryHandler() queries.GetBooksQueryHandler {
	return queries.NewGetBooksQueryHandler(c.gormDB)
}

// CreateGetBookQueryHandler serves single-book reads through the redis cache
// so the hot catalog detail path does not hit the database on every request.
func (c *CompositionRoot) CreateGetBookQueryHandler() queries.GetBookQueryHandler {
	cachedBooks := redisout.NewCachedBookRepository(
		c.uowFactory.Create().BookRepository(),
		c.redisClient,
		bookCacheTTL,
	)
	return queries.NewGetBookQueryHandler(cachedBooks)
}

func (c *CompositionRoot) CreateGetBookReviewsQueryHandler() queries.GetBookReviewsQueryHandler {
	return queries.NewGetBookReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoriesQueryHandler() queries.GetCategoriesQueryHandler {
	return queries.NewGetCategoriesQueryHandler(c.gormDB)
}

// CreateAuthMiddleware builds the bearer-token middleware, backed by the user
// repository so roles come from the database rather than token claims.
func (c *CompositionRoot) CreateAuthMiddleware() *httpin.AuthMiddleware {
	return httpin.NewAuthMiddleware(c.config.JWTSecret, c.uowFactory.Create().UserRepository(), c.logger)
}

// CreateHTTPServer assembles the HTTP server with every use case handler.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.logger, c.CreateAuthMiddleware(), httpin.Handlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		UpdateOrder:    c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:    c.CreateDeleteOrderCommandHandler(),
		AddBook:        c.CreateAddBookCommandHandler(),
		UpdateBook:     c.CreateUpdateBookCommandHandler(),
		AddCategory:    c.CreateAddCategoryCommandHandler(),
		AddSubcategory: c.CreateAddSubcategoryCommandHandler(),
		AddReview:      c.CreateAddReviewCommandHandler(),

		GetOrders:      c.CreateGetOrdersQueryHandler(),
		GetBooks:       c.CreateGetBooksQueryHandler(),
		GetBook:        c.CreateGetBookQueryHandler(),
		GetBookReviews: c.CreateGetBookReviewsQueryHandler(),
		GetCategories:  c.CreateGetCategoriesQueryHandler(),
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBookUoWFactory func() commands.BookUoW

func (f FuncBookUoWFactory) Create() commands.BookUoW {
	return f()
}

type FuncCategoryUoWFactory func() commands.CategoryUoW

func (f FuncCategoryUoWFactory) Create() commands.CategoryUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
