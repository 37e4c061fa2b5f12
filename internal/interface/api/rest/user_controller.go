package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-service/internal/application/ports"
	"user-service/internal/application/usecase"
	domain "user-service/internal/domain/user"
	"user-service/internal/interface/api/rest/dto/user"
	"user-service/internal/interface/api/rest/middleware"
	"user-service/internal/interface/api/rest/validator"
)

type UserUseCases struct {
	Create  ports.CreateUser
	Update  ports.UpdateUser
	Delete  ports.DeleteUser
	GetByID ports.GetUserByID
	GetAll  ports.GetAllUsers
}

type UserController struct {
	useCases UserUseCases
	hasher   ports.PasswordHasher
	logger   *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	useCases UserUseCases,
	hasher ports.PasswordHasher,
	logger *zap.Logger,
	tokens ports.TokenValidator,
) *UserController {
	uc := &UserController{
		useCases: useCases,
		hasher:   hasher,
		logger:   logger,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.POST(RouteUsers, middleware.Actor(tokens), uc.CreateUserHandler)
	r.PUT(RouteUser, middleware.Actor(tokens), uc.UpdateUserHandler)
	r.DELETE(RouteUser, middleware.Actor(tokens), uc.DeleteUserHandler)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	pageIdx, pageSize, err := validator.ValidatePaging(c.Query("page"), c.Query("page_size"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	users, err := uc.useCases.GetAll.Execute(c.Request.Context(), usecase.GetAllUsersQuery{
		Page:     pageIdx,
		PageSize: pageSize,
	})
	if err != nil {
		uc.fail(c, err, "failed to get users")
		return
	}

	c.JSON(http.StatusOK, user.ToPagedResponse(users))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	u, err := uc.useCases.GetByID.Execute(c.Request.Context(), usecase.GetUserByIDQuery{ID: uuid})
	if err != nil {
		uc.fail(c, err, "failed to get a user")
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateCreateUser(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	cmd, err := user.ToCreateCommand(req, middleware.ActorID(c), uc.hasher)
	if err != nil {
		uc.badMapping(c, err)
		return
	}

	u, err := uc.useCases.Create.Execute(c.Request.Context(), cmd)
	if err != nil {
		uc.fail(c, err, "failed to create a user")
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUpdateUser(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	cmd, err := user.ToUpdateCommand(uuid, req, middleware.ActorID(c))
	if err != nil {
		uc.badMapping(c, err)
		return
	}

	u, err := uc.useCases.Update.Execute(c.Request.Context(), cmd)
	if err != nil {
		uc.fail(c, err, "failed to update a user")
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	ok, uuid := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	err := uc.useCases.Delete.Execute(c.Request.Context(), usecase.DeleteUserCommand{
		ID:        uuid,
		DeletedBy: middleware.ActorID(c),
	})
	if err != nil {
		uc.fail(c, err, "failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}

func (uc *UserController) badMapping(c *gin.Context, err error) {
	if errors.Is(err, user.ErrInvalidBirthDate) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	uc.fail(c, err, "failed to process request")
}

// fail maps use-case errors to a status; anything unexpected is logged and hidden behind msg.
func (uc *UserController) fail(c *gin.Context, err error, msg string) {
	switch {
	// a bad role read back from the store is a server fault, not a bad request
	case errors.Is(err, domain.ErrUnknownRole) && !errors.Is(err, domain.ErrDataAccess):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidPage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
	default:
		uc.logger.Error(msg,
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
