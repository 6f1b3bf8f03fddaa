package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"unihub/db"
	"unihub/models"
	"unihub/utils"
)

// RegisterHandler creates a new user account
func RegisterHandler(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password, role and name are required"})
		return
	}

	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	if req.Email != nil && *req.Email != "" && !utils.ValidateEmail(*req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	database := getDB(c)

	// Check if the name is already taken
	var count int
	err := database.QueryRow("SELECT COUNT(*) FROM users WHERE name = ?", req.Name).Scan(&count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		log.Printf("Error checking name existence: %v", err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Name already registered"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing your request"})
		log.Printf("Error hashing password: %v", err)
		return
	}

	userID := req.UserID
	if userID > 0 {
		_, err = database.Exec(
			"INSERT INTO users (userid, name, email, password, role) VALUES (?, ?, ?, ?, ?)",
			userID, req.Name, req.Email, hashedPassword, req.Role,
		)
	} else {
		var result sql.Result
		result, err = database.Exec(
			"INSERT INTO users (name, email, password, role) VALUES (?, ?, ?, ?)",
			req.Name, req.Email, hashedPassword, req.Role,
		)
		if err == nil {
			id, idErr := result.LastInsertId()
			if idErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving user ID"})
				log.Printf("Error getting last insert ID: %v", idErr)
				return
			}
			userID = int(id)
		}
	}
	if err != nil {
		if db.IsDuplicate(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error registering user"})
		log.Printf("Error inserting user: %v", err)
		return
	}

	c.JSON(http.StatusCreated, models.User{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
	})
}

// LoginHandler authenticates a user and returns the stored role
func LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID and password are required"})
		return
	}

	database := getDB(c)
	var hashedPassword, role string
	err := database.QueryRow(
		"SELECT password, role FROM users WHERE userid = ?", req.UserID,
	).Scan(&hashedPassword, &role)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			log.Printf("Error retrieving user: %v", err)
		}
		return
	}

	if err := utils.ComparePassword(hashedPassword, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "role": role})
}
