package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/janmeier/inkwell/app/repository"
	"github.com/janmeier/inkwell/internal/pkg/paginator"
	"github.com/janmeier/inkwell/internal/pkg/usercontext"
)

// HandleUserProfile renders an author's listing with follower/following counts
func HandleUserProfile(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	author, err := repos.User.GetByName(c.Params("username"))
	if err != nil {
		return renderNotFound(c)
	}

	total, err := repos.Post.CountByUser(author.ID)
	if err != nil {
		return fmt.Errorf("count profile posts: %w", err)
	}

	page := paginator.New(int(total), paginator.PerPage).Page(paginator.ParseNumber(c.Query("page")))
	posts, err := repos.Post.ListByUser(author.ID, page.Offset, page.Limit)
	if err != nil {
		return fmt.Errorf("list profile posts: %w", err)
	}

	followers, _ := repos.Follow.CountFollowers(author.ID)
	following, _ := repos.Follow.CountFollowing(author.ID)

	isFollowing := false
	if userCtx.IsLoggedIn {
		isFollowing, _ = repos.Follow.Exists(userCtx.UserID, author.ID)
	}

	data := baseViewData(c, " | @"+author.Name)
	data["Author"] = author
	data["Posts"] = posts
	data["Page"] = page
	data["PostsCount"] = total
	data["FollowerCount"] = followers
	data["FollowingCount"] = following
	data["IsFollowing"] = isFollowing
	data["IsSelf"] = userCtx.IsLoggedIn && userCtx.UserID == author.ID

	return c.Render("posts/profile", data, "layouts/main")
}

// HandleProfileFollow creates a follow edge. Self-follows and duplicates are
// no-ops; either way the request lands back on the profile.
func HandleProfileFollow(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	author, err := repos.User.GetByName(c.Params("username"))
	if err != nil {
		return renderNotFound(c)
	}

	if err := repos.Follow.Create(userCtx.UserID, author.ID); err != nil {
		return fmt.Errorf("create follow: %w", err)
	}

	return c.Redirect("/profile/"+author.Name, fiber.StatusSeeOther)
}

// HandleProfileUnfollow removes a follow edge; removing a missing edge is a
// no-op.
func HandleProfileUnfollow(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	author, err := repos.User.GetByName(c.Params("username"))
	if err != nil {
		return renderNotFound(c)
	}

	if err := repos.Follow.Delete(userCtx.UserID, author.ID); err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}

	return c.Redirect("/profile/"+author.Name, fiber.StatusSeeOther)
}
