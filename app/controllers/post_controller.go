package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/janmeier/inkwell/app/models"
	"github.com/janmeier/inkwell/app/repository"
	"github.com/janmeier/inkwell/internal/pkg/imageprocessor"
	"github.com/janmeier/inkwell/internal/pkg/paginator"
	"github.com/janmeier/inkwell/internal/pkg/statistics"
	"github.com/janmeier/inkwell/internal/pkg/upload"
	"github.com/janmeier/inkwell/internal/pkg/usercontext"
)

// HandlePostIndex renders the home listing of all posts. The unpaginated
// variant of this page sits behind the page-snapshot cache.
func HandlePostIndex(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	total, err := repos.Post.Count()
	if err != nil {
		return fmt.Errorf("count posts: %w", err)
	}

	page := paginator.New(int(total), paginator.PerPage).Page(paginator.ParseNumber(c.Query("page")))
	posts, err := repos.Post.List(page.Offset, page.Limit)
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	data := baseViewData(c, "")
	data["Posts"] = posts
	data["Page"] = page
	data["Stats"] = statistics.GetSiteStats()

	return c.Render("posts/index", data, "layouts/main")
}

// HandleGroupIndex renders the listing of one group's posts
func HandleGroupIndex(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	group, err := repos.Group.GetBySlug(c.Params("slug"))
	if err != nil {
		return renderNotFound(c)
	}

	total, err := repos.Post.CountByGroup(group.ID)
	if err != nil {
		return fmt.Errorf("count group posts: %w", err)
	}

	page := paginator.New(int(total), paginator.PerPage).Page(paginator.ParseNumber(c.Query("page")))
	posts, err := repos.Post.ListByGroup(group.ID, page.Offset, page.Limit)
	if err != nil {
		return fmt.Errorf("list group posts: %w", err)
	}

	data := baseViewData(c, " | "+group.Title)
	data["Group"] = group
	data["Posts"] = posts
	data["Page"] = page

	return c.Render("posts/group_list", data, "layouts/main")
}

// HandleFollowIndex renders the aggregated feed of followed authors
func HandleFollowIndex(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	total, err := repos.Post.CountFeed(userCtx.UserID)
	if err != nil {
		return fmt.Errorf("count feed posts: %w", err)
	}

	page := paginator.New(int(total), paginator.PerPage).Page(paginator.ParseNumber(c.Query("page")))
	posts, err := repos.Post.ListFeed(userCtx.UserID, page.Offset, page.Limit)
	if err != nil {
		return fmt.Errorf("list feed posts: %w", err)
	}

	data := baseViewData(c, " | Feed")
	data["Posts"] = posts
	data["Page"] = page

	return c.Render("posts/follow", data, "layouts/main")
}

// HandlePostDetail renders a single post with its comments and the
// comment-submission form
func HandlePostDetail(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	post, ok := findPost(c)
	if !ok {
		return renderNotFound(c)
	}

	comments, err := repos.Comment.ListByPost(post.ID)
	if err != nil {
		return fmt.Errorf("list comments: %w", err)
	}
	authorPosts, _ := repos.Post.CountByUser(post.UserID)
	followers, _ := repos.Follow.CountFollowers(post.UserID)
	following, _ := repos.Follow.CountFollowing(post.UserID)

	data := baseViewData(c, " | "+post.Preview())
	data["Post"] = post
	data["Comments"] = comments
	data["CommentsCount"] = len(comments)
	data["AuthorPostsCount"] = authorPosts
	data["FollowerCount"] = followers
	data["FollowingCount"] = following

	return c.Render("posts/post_detail", data, "layouts/main")
}

// HandlePostCreate shows the post form and processes its submission. An
// invalid submission re-renders the form with field messages.
func HandlePostCreate(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	if c.Method() == fiber.MethodPost {
		form, fieldErrors := parsePostForm(c)
		if len(fieldErrors) == 0 {
			post := &models.Post{
				Text:      form.Text,
				UserID:    userCtx.UserID,
				GroupID:   form.GroupID,
				ImagePath: form.ImagePath,
			}
			if err := repos.Post.Create(post); err != nil {
				return fmt.Errorf("create post: %w", err)
			}

			fm := fiber.Map{"type": "success", "message": "Post published."}
			return flash.WithSuccess(c, fm).Redirect("/profile/"+userCtx.Username, fiber.StatusSeeOther)
		}

		return renderPostForm(c, false, form, fieldErrors)
	}

	return renderPostForm(c, false, postForm{}, nil)
}

// HandlePostEdit lets the author change a post's text, group and image. A
// non-author is silently redirected to the post detail view; the edit form is
// never shown and no error message distinguishes the denial.
func HandlePostEdit(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	post, ok := findPost(c)
	if !ok {
		return renderNotFound(c)
	}

	detailURL := fmt.Sprintf("/posts/%d", post.ID)
	if post.UserID != userCtx.UserID {
		return c.Redirect(detailURL, fiber.StatusSeeOther)
	}

	if c.Method() == fiber.MethodPost {
		form, fieldErrors := parsePostForm(c)
		if len(fieldErrors) == 0 {
			post.Text = form.Text
			post.GroupID = form.GroupID
			if form.ImagePath != "" {
				post.ImagePath = form.ImagePath
			}
			if err := repos.Post.Update(post); err != nil {
				return fmt.Errorf("update post: %w", err)
			}

			return c.Redirect(detailURL, fiber.StatusSeeOther)
		}

		form.PostID = post.ID
		return renderPostForm(c, true, form, fieldErrors)
	}

	form := postForm{PostID: post.ID, Text: post.Text, GroupID: post.GroupID, ImagePath: post.ImagePath}
	return renderPostForm(c, true, form, nil)
}

// HandleAddComment attaches a comment to a post. An invalid submission is
// dropped silently: the request redirects back to the post detail view either
// way.
func HandleAddComment(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	post, ok := findPost(c)
	if !ok {
		return renderNotFound(c)
	}

	text := strings.TrimSpace(c.FormValue("text"))
	if text != "" {
		comment := &models.Comment{
			Text:   text,
			UserID: userCtx.UserID,
			PostID: post.ID,
		}
		if err := repos.Comment.Create(comment); err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
	}

	return c.Redirect(fmt.Sprintf("/posts/%d", post.ID), fiber.StatusSeeOther)
}

// postForm carries the submitted (or pre-filled) values of the post form.
type postForm struct {
	PostID    uint
	Text      string
	GroupID   *uint
	ImagePath string
}

func findPost(c *fiber.Ctx) (*models.Post, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return nil, false
	}

	post, err := repository.GetGlobalRepositories().Post.GetByID(uint(id))
	if err != nil {
		return nil, false
	}
	return post, true
}

func parsePostForm(c *fiber.Ctx) (postForm, map[string]string) {
	repos := repository.GetGlobalRepositories()
	fieldErrors := map[string]string{}

	form := postForm{Text: strings.TrimSpace(c.FormValue("text"))}
	if form.Text == "" {
		fieldErrors["Text"] = "Post text must not be empty."
	}

	if raw := c.FormValue("group"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			fieldErrors["Group"] = "Please choose a valid group."
		} else if _, err := repos.Group.GetByID(uint(id)); err != nil {
			fieldErrors["Group"] = "Please choose a valid group."
		} else {
			groupID := uint(id)
			form.GroupID = &groupID
		}
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil && fh.Size > 0 {
		src, err := fh.Open()
		if err != nil {
			fieldErrors["Image"] = "The image could not be read."
			return form, fieldErrors
		}
		head := make([]byte, 512)
		n, _ := src.Read(head)
		src.Close()

		if _, err := upload.ValidateImageBySniff(fh.Filename, head[:n]); err != nil {
			fieldErrors["Image"] = err.Error()
			return form, fieldErrors
		}

		path, err := imageprocessor.SavePostImage(fh)
		if err != nil {
			fieldErrors["Image"] = "The image could not be stored."
			return form, fieldErrors
		}
		form.ImagePath = path
	}

	return form, fieldErrors
}

func renderPostForm(c *fiber.Ctx, isEdit bool, form postForm, fieldErrors map[string]string) error {
	groups, err := repository.GetGlobalRepositories().Group.GetAll()
	if err != nil {
		return fmt.Errorf("list groups: %w", err)
	}

	title := " | New Post"
	if isEdit {
		title = " | Edit Post"
	}

	data := baseViewData(c, title)
	data["IsEdit"] = isEdit
	data["Form"] = form
	data["Groups"] = groups
	data["Errors"] = fieldErrors
	data["SelectedGroup"] = uint(0)
	if form.GroupID != nil {
		data["SelectedGroup"] = *form.GroupID
	}

	return c.Render("posts/create_post", data, "layouts/main")
}
