package controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/janmeier/inkwell/app/models"
	"github.com/janmeier/inkwell/app/repository"
)

// HandleAdminGroups renders the administrative group overview with the
// creation form.
func HandleAdminGroups(c *fiber.Ctx) error {
	groups, err := repository.GetGlobalRepositories().Group.GetAll()
	if err != nil {
		return fmt.Errorf("list groups: %w", err)
	}

	data := baseViewData(c, " | Groups")
	data["Groups"] = groups

	return c.Render("admin/groups", data, "layouts/main")
}

// HandleAdminGroupCreate creates a new group from the admin form.
func HandleAdminGroupCreate(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	group := &models.Group{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Slug:        strings.TrimSpace(c.FormValue("slug")),
		Description: strings.TrimSpace(c.FormValue("description")),
	}

	if err := group.Validate(); err != nil {
		fm := fiber.Map{"type": "error", "message": "Title and slug are required."}
		return flash.WithError(c, fm).Redirect("/admin/groups")
	}

	if exists, err := repos.Group.SlugExists(group.Slug); err != nil {
		return fmt.Errorf("check slug: %w", err)
	} else if exists {
		fm := fiber.Map{"type": "error", "message": "That slug is already taken."}
		return flash.WithError(c, fm).Redirect("/admin/groups")
	}

	if err := repos.Group.Create(group); err != nil {
		return fmt.Errorf("create group: %w", err)
	}

	fm := fiber.Map{"type": "success", "message": "Group created."}
	return flash.WithSuccess(c, fm).Redirect("/admin/groups")
}

// HandleAdminGroupDelete removes a group. Its posts survive with the group
// reference cleared.
func HandleAdminGroupDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return renderNotFound(c)
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Group.GetByID(uint(id)); err != nil {
		return renderNotFound(c)
	}

	if err := repos.Group.Delete(uint(id)); err != nil {
		return fmt.Errorf("delete group: %w", err)
	}

	fm := fiber.Map{"type": "success", "message": "Group deleted, posts kept."}
	return flash.WithSuccess(c, fm).Redirect("/admin/groups")
}

// HandleAdminPostDelete removes a post together with its comments.
func HandleAdminPostDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return renderNotFound(c)
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Post.GetByID(uint(id)); err != nil {
		return renderNotFound(c)
	}

	if err := repos.Post.Delete(uint(id)); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	fm := fiber.Map{"type": "success", "message": "Post deleted."}
	return flash.WithSuccess(c, fm).Redirect("/")
}
