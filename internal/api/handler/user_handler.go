package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// userSelfPatchRequest is the self-service update allowlist: any other key
// in the body rejects the request.
type userSelfPatchRequest struct {
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Pseudo   *string `json:"pseudo"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// userAdminPatchRequest additionally lets admins change role and active.
type userAdminPatchRequest struct {
	userSelfPatchRequest
	Role   *string `json:"role"`
	Active *bool   `json:"active"`
}

// Me returns the caller's own record, or null when the account no longer
// exists.
//
// @Summary      Get the authenticated user
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  map[string]string
// @Router       /user/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.service.Me(c.Request().Context(), claims.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": user})
}

// UpdateMe applies a partial update to the caller's own record.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req userSelfPatchRequest
	if err := decodeStrict(c, &req); err != nil {
		return err
	}

	err = h.service.UpdateMe(c.Request().Context(), claims.ID, ports.UserPatch{
		Name:     req.Name,
		Surname:  req.Surname,
		Pseudo:   req.Pseudo,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"success": "User edit."})
}

// DeleteMe removes the caller's own record.
func (h *UserHandler) DeleteMe(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteMe(c.Request().Context(), claims.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"success": "User deleted."})
}

// Search looks up users by allowlisted equality filters. Admin only.
//
// @Summary      Search users
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      449  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /user/search [get]
func (h *UserHandler) Search(c echo.Context) error {
	users, err := h.service.Search(c.Request().Context(), queryFilters(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"success": users})
}

// Update applies an admin partial update to an arbitrary user.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	var req userAdminPatchRequest
	if err := decodeStrict(c, &req); err != nil {
		return err
	}

	err = h.service.Update(c.Request().Context(), id, ports.AdminUserPatch{
		UserPatch: ports.UserPatch{
			Name:     req.Name,
			Surname:  req.Surname,
			Pseudo:   req.Pseudo,
			Email:    req.Email,
			Password: req.Password,
		},
		Role:   req.Role,
		Active: req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User modified."})
}

// Delete removes an arbitrary user. Admin only.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c, domain.ErrUserNotFound)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted."})
}
