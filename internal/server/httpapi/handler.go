package httpapi

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/verifeed/verifeed/internal/common"
)

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Welcome to the Deepfake News Verification API"})
}

func (s *Server) handleRegister(c echo.Context) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")
	if username == "" || email == "" || password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "all fields are required")
	}

	image, filename, err := readUpload(c, "profile_image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "profile image is required")
	}

	identity, err := s.gateway.Register(c.Request().Context(), username, email, password, image, filename)
	if err != nil {
		return s.mapError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "User registered successfully!",
		"user_data": echo.Map{
			"email":             identity.Email,
			"username":          identity.Username,
			"profile_image_url": identity.ProfileImageURL,
		},
	})
}

func (s *Server) handleLogin(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	identity, err := s.gateway.Login(c.Request().Context(), username, password)
	if err != nil {
		return s.mapError(c, err)
	}

	// The identity's json encoding omits the credential.
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Login successful!",
		"user_data": identity,
	})
}

func (s *Server) handleFeed(c echo.Context) error {
	feed, err := s.gateway.ListFeed(c.Request().Context())
	if err != nil {
		return s.mapError(c, err)
	}
	return c.JSON(http.StatusOK, feed)
}

func (s *Server) handleCreatePost(c echo.Context) error {
	identityID := c.FormValue("user_id")
	content := c.FormValue("content")
	if identityID == "" || content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "all fields are required")
	}

	image, filename, err := readUpload(c, "image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image is required")
	}

	post, err := s.gateway.CreatePost(c.Request().Context(), identityID, content, image, filename)
	if err != nil {
		return s.mapError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Post created successfully!",
		"post_data": post,
	})
}

func (s *Server) handleStats(c echo.Context) error {
	stats, err := s.gateway.Stats(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return s.mapError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// mapError turns gateway errors into HTTP responses: client faults become
// 400s with the sentinel's message, everything else is logged and reported
// as a generic 500.
func (s *Server) mapError(c echo.Context, err error) error {
	if common.IsClientFault(err) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.log.Error(c.Request().Context(), err.Error())
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}

func readUpload(c echo.Context, field string) ([]byte, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, "", err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}

	return data, fh.Filename, nil
}
