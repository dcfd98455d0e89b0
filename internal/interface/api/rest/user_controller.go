package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"record-manager-api/internal/application/ports"
	"record-manager-api/internal/interface/api/rest/dto/user"
	"record-manager-api/internal/interface/api/rest/validator"
)

const msgSuccess = "success"

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUserByID, uc.GetUserHandler)
	r.POST(RouteUser, uc.CreateUserHandler)
	r.PATCH(RouteUserByID, uc.UpdateUserHandler)
	r.DELETE(RouteUserByID, uc.DeleteUserHandler)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	users, err := uc.userService.FindUsers(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get users"},
		)
		uc.logger.Error("FindUsers() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.ListResponse{
		Message: msgSuccess,
		Data:    user.ToResponseUsers(users),
	})
}

// GetUserHandler answers with a list of zero or one rows; an absent id is an
// empty list with 200, not a 404.
func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}

	data := user.Users{}
	if u != nil {
		data = append(data, user.ToResponseUser(*u))
	}

	c.JSON(http.StatusOK, user.ListResponse{
		Message: msgSuccess,
		Data:    data,
	})
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if err := validator.ValidateUser(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a user"},
		)
		uc.logger.Error("CreateUser() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.CreateResponse{
		Message: msgSuccess,
		Data:    user.ToResponseUser(*u),
		ID:      int64(u.ID),
	})
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	var req user.Request
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if err = validator.ValidateUser(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := uc.userService.UpdateUser(c.Request.Context(), id, req.Username)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a user"},
		)
		uc.logger.Error("UpdateUser() error", zap.Error(err))
		return
	}

	var changes int64
	if u != nil {
		changes = 1
	}

	c.JSON(http.StatusOK, user.UpdateResponse{
		Message: msgSuccess,
		ID:      int64(id),
		Changes: changes,
	})
}

// DeleteUserHandler runs the full cascade and answers only after its
// transaction outcome is known. Deleting an absent user is still a 200: the
// cascade is a no-op end to end.
func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	if err = uc.userService.DeleteUser(c.Request.Context(), id); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete user"},
		)
		uc.logger.Error("DeleteUser() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, user.MessageResponse{
		Message: "Record and Images Deleted",
	})
}
