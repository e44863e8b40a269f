package Controllers

import (
	"strings"

	"RoutineMaster/Models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

type userInput struct {
	Name       string `json:"name" validate:"required"`
	Username   string `json:"username" validate:"required,min=3"`
	Email      string `json:"email" validate:"omitempty,email"`
	Password   string `json:"password" validate:"omitempty,min=4"`
	Role       string `json:"role" validate:"required,oneof=ADMIN OPERATOR"`
	Title      string `json:"title"`
	Shift      string `json:"shift"`
	Department string `json:"department"`
}

// RegisterUser creates a new account. Admin only.
func RegisterUser(c *fiber.Ctx) error {
	var input userInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Password is required"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := Models.User{
		Name:       input.Name,
		Username:   input.Username,
		Email:      input.Email,
		Password:   hash,
		Role:       input.Role,
		Title:      input.Title,
		Shift:      input.Shift,
		Department: input.Department,
	}

	result := Models.DB.Create(&user)
	if result.Error != nil {
		if strings.Contains(result.Error.Error(), "UNIQUE constraint") ||
			strings.Contains(result.Error.Error(), "Duplicate entry") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A user with this username or email already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser replaces a user's fields by id. Admin only. The password
// is only rehashed when a new one is supplied.
func UpdateUser(c *fiber.Ctx) error {
	var input struct {
		ID uint `json:"id"`
		userInput
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input.userInput); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user Models.User
	if err := Models.DB.First(&user, input.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.Name = input.Name
	user.Username = input.Username
	user.Email = input.Email
	user.Role = input.Role
	user.Title = input.Title
	user.Shift = input.Shift
	user.Department = input.Department
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
		}
		user.Password = hash
	}

	if err := Models.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(user)
}

// FetchUsers lists all users. Admin only.
func FetchUsers(c *fiber.Ctx) error {
	var users []Models.User
	if err := Models.DB.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve users"})
	}
	return c.JSON(users)
}

// DeleteUser removes a user by id. Admin only. Admins cannot delete
// themselves, so the system always keeps at least one administrator.
func DeleteUser(c *fiber.Ctx) error {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if actor, ok := c.Locals("user").(Models.User); ok && actor.ID == input.ID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You cannot delete your own account"})
	}

	var user Models.User
	if err := Models.DB.First(&user, input.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	Models.DB.Delete(&user)

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
