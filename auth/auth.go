package auth

import (
	"errors"
	"net/http"
	"net/mail"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/craftkart/marketplace-api/logger"
	"github.com/craftkart/marketplace-api/models"
)

const bcryptCost = 12

type SignupInput struct {
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	Password        string      `json:"password"`
	ConfirmPassword string      `json:"confirmPassword"`
	Role            models.Role `json:"userType"`
	ShopName        string      `json:"shopName"`
	BusinessAddress string      `json:"businessAddress"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (in *SignupInput) validate() []string {
	var errs []string
	if len(in.FirstName) < 2 {
		errs = append(errs, "First Name should be at least 2 characters long")
	} else if !isAlpha(in.FirstName) {
		errs = append(errs, "First Name should only contain alphabets")
	}
	if in.LastName != "" && !isAlpha(in.LastName) {
		errs = append(errs, "Last Name should only contain alphabets")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		errs = append(errs, "Please enter a valid email")
	}
	if in.Phone == "" {
		errs = append(errs, "Please enter a valid phone number")
	}
	errs = append(errs, ValidatePassword(in.Password)...)
	if in.ConfirmPassword != in.Password {
		errs = append(errs, "Passwords do not match")
	}
	if in.Role == "" {
		in.Role = models.RoleCustomer
	}
	if !in.Role.Valid() {
		errs = append(errs, "Invalid user type")
	}
	if in.Role == models.RoleSeller && (in.ShopName == "" || in.BusinessAddress == "") {
		errs = append(errs, "Please provide shop name and business address")
	}
	return errs
}

// POST /auth/signup
func SignupHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in SignupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request payload"}})
			return
		}
		if errs := in.validate(); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
			return
		}

		var existing models.User
		err := db.Where("email = ?", in.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{"Already registered"}})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error occurred during registration"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error occurred during registration"})
			return
		}

		user := models.User{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
			Phone:     in.Phone,
			Password:  string(hash),
			Role:      in.Role,
		}
		if in.Role == models.RoleSeller {
			user.ShopName = in.ShopName
			user.BusinessAddress = in.BusinessAddress
		}
		if err := db.Create(&user).Error; err != nil {
			logger.L.Error("signup failed", zap.String("email", in.Email), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error occurred during registration"})
			return
		}

		token, err := IssueToken(&user)
		if err != nil {
			logger.L.Error("token issue failed", zap.Uint("user_id", user.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error occurred during registration"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "User registered successfully",
			"token":   token,
			"user":    user.Summary(),
		})
	}
}

// POST /auth/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in LoginInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", in.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error occurred during login"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := IssueToken(&user)
		if err != nil {
			logger.L.Error("token issue failed", zap.Uint("user_id", user.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error occurred during login"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user":  user.Summary(),
		})
	}
}

// POST /auth/logout
//
// Tokens are stateless, so logout is an acknowledgment; clients drop the token.
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}
