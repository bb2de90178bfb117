package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/appbook/appbook/db"
	"github.com/appbook/appbook/middleware"
	"github.com/appbook/appbook/models"
	"github.com/appbook/appbook/redis"
	"github.com/appbook/appbook/utils"
	"github.com/appbook/appbook/validation"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// Signup handles user registration
func Signup(c *fiber.Ctx) error {
	var input validation.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Cannot parse JSON", err)
	}
	if err := input.Validate(); err != nil {
		return fail(c, err)
	}

	// Check if user already exists
	var existingUser models.User
	if db.DB.Where("email = ?", input.Email).First(&existingUser).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "User with this email already exists",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to hash password",
		})
	}

	user := models.User{
		Name:           input.Name,
		Email:          input.Email,
		HashedPassword: string(hashedPassword),
		Role:           input.Role,
		Phone:          input.Phone,
		Address:        input.Address,
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	if err := db.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create user",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles user authentication
func Login(c *fiber.Ctx) error {
	var input validation.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Cannot parse JSON", err)
	}
	if err := input.Validate(); err != nil {
		return fail(c, err)
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	token, refreshToken, err := issueTokens(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func RefreshToken(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Cannot parse JSON", err)
	}

	token, err := jwt.Parse(input.RefreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(middleware.JWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired refresh token",
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token claims",
		})
	}
	idVal, ok := claims["id"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID in token",
		})
	}
	userID := uint(idVal)

	valid, err := redis.ValidateRefreshToken(userID, input.RefreshToken)
	if err != nil || !valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Refresh token revoked",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	newToken, newRefresh, err := issueTokens(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token":        newToken,
		"refreshToken": newRefresh,
	})
}

// Logout revokes the caller's refresh token.
func Logout(c *fiber.Ctx) error {
	sess := middleware.Session(c)
	if err := redis.RevokeRefreshToken(sess.UserID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to log out",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// GetUserProfile returns the current user's profile
func GetUserProfile(c *fiber.Ctx) error {
	sess := middleware.Session(c)

	var user models.User
	if err := db.DB.Preload("Professional").First(&user, sess.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
		})
	}
	return c.JSON(user)
}

// UploadProfilePicture stores the caller's profile picture in
// Cloudinary and saves the URL.
func UploadProfilePicture(c *fiber.Ctx) error {
	sess := middleware.Session(c)

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		return badRequest(c, "Picture file is required", err)
	}
	if fileHeader.Size > utils.MaxUploadSize {
		return badRequest(c, "Picture exceeds the 5MB limit", nil)
	}
	if !utils.AllowedImageTypes[fileHeader.Header.Get("Content-Type")] {
		return badRequest(c, "Unsupported image type", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to read upload",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("user-%d", sess.UserID), "profile-pictures")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload picture",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", sess.UserID).
		Update("profile_picture", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save picture URL",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"profile_picture": url})
}

// issueTokens builds the access/refresh pair and stores the refresh
// token in redis for later validation.
func issueTokens(user *models.User) (access, refresh string, err error) {
	secret := []byte(middleware.JWTSecret())

	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(accessTokenTTL).Unix(),
	}
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"id":  user.ID,
		"exp": time.Now().Add(refreshTokenTTL).Unix(),
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(secret)
	if err != nil {
		return "", "", err
	}

	if err := redis.StoreRefreshToken(user.ID, refresh, refreshTokenTTL); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
