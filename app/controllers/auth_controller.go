package controllers

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/janmeier/inkwell/app/models"
	"github.com/janmeier/inkwell/app/repository"
	"github.com/janmeier/inkwell/internal/pkg/session"
)

// HandleAuthLogin renders the login form and processes submissions. A valid
// login stores the principal in the session and follows the sanitized return
// path from the "next" parameter.
func HandleAuthLogin(c *fiber.Ctx) error {
	next := safeNext(c.Query("next"))
	loginURL := "/login"
	if next != "/" {
		loginURL = "/login?next=" + url.QueryEscape(next)
	}

	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{"type": "error"}

		// notice: in production you should not inform the user
		// with detailed messages about login failures
		user, err := repository.GetGlobalRepositories().User.GetByEmail(c.FormValue("email"))
		if err != nil {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect(loginURL)
		}

		if !user.CheckPassword(c.FormValue("password")) {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect(loginURL)
		}

		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect(loginURL)
		}

		sess.Set(AUTH_KEY, true)
		sess.Set(USER_ID, user.ID)
		sess.Set(USER_NAME, user.Name)
		sess.Set(USER_IS_ADMIN, user.IsAdmin())

		if err := sess.Save(); err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect(loginURL)
		}

		fm = fiber.Map{"type": "success", "message": "Welcome back!"}

		return flash.WithSuccess(c, fm).Redirect(next)
	}

	data := baseViewData(c, " | Login")
	data["Next"] = next

	return c.Render("auth/login", data, "layouts/main")
}

// HandleAuthRegister renders the signup form and creates the account.
func HandleAuthRegister(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		user, err := models.CreateUser(c.FormValue("username"), c.FormValue("email"), c.FormValue("password"))
		if err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": fmt.Sprintf("something went wrong: %s", err),
			}

			return flash.WithError(c, fm).Redirect("/register")
		}

		if err := repository.GetGlobalRepositories().User.Create(user); err != nil {
			fm := fiber.Map{
				"type":    "error",
				"message": "That username or email is already taken",
			}

			return flash.WithError(c, fm).Redirect("/register")
		}

		fm := fiber.Map{"type": "success", "message": "Account created, you can log in now."}

		return flash.WithSuccess(c, fm).Redirect("/login")
	}

	return c.Render("auth/register", baseViewData(c, " | Register"), "layouts/main")
}

// HandleAuthLogout destroys the session.
func HandleAuthLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return flash.WithError(c, fiber.Map{"type": "error", "message": "logged out (no sess)"}).Redirect("/login")
	}

	if err := sess.Destroy(); err != nil {
		return flash.WithError(c, fiber.Map{"type": "error", "message": fmt.Sprintf("something went wrong: %s", err)}).Redirect("/login")
	}

	fm := fiber.Map{"type": "success", "message": "Bye bye!"}

	return flash.WithSuccess(c, fm).Redirect("/login")
}
