package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"todoapi/apperrors"
	"todoapi/pkg/logger"
	"todoapi/pkg/metrics"
	"todoapi/server/middleware/identity"
	"todoapi/store"
)

// The todo handlers operate against the request-scoped store the identity
// middleware resolved; none of them talk to each other.

func HandleAddTodo(timeout time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ts := identity.StoreFromCtx(ctx)

		var req RequestTodoCreate
		if err := ctx.BodyParser(&req); err != nil {
			return apperrors.NewBadRequest("Invalid request body")
		}

		todo := store.Todo{
			ID:       uuid.NewString(),
			Text:     req.Text,
			Priority: req.Priority,
			Status:   req.Status,
		}

		dbCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := ts.Insert(dbCtx, todo)
		metrics.RecordTodoOperation("add", err)
		if err != nil {
			return apperrors.NewDatabaseError("add todo", err)
		}

		logger.WithFields(map[string]any{
			"user_id": identity.UserIDFromCtx(ctx),
			"todo_id": todo.ID,
		}).Debug("Todo created")

		return ctx.Status(fiber.StatusCreated).JSON(todo)
	}
}

func HandleListTodos(timeout time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ts := identity.StoreFromCtx(ctx)

		filter := store.TodoFilter{
			Search: ctx.Query("search_q"),
		}
		if priority, ok := queryValue(ctx, "priority"); ok {
			filter.Priority = &priority
		}
		if status, ok := queryValue(ctx, "status"); ok {
			filter.Status = &status
		}

		dbCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		todos, err := ts.List(dbCtx, filter)
		metrics.RecordTodoOperation("list", err)
		if err != nil {
			return apperrors.NewDatabaseError("list todos", err)
		}

		return ctx.JSON(todos)
	}
}

func HandleGetTodo(timeout time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ts := identity.StoreFromCtx(ctx)
		todoID := ctx.Params("todoId")

		dbCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		todo, err := ts.Get(dbCtx, todoID)
		metrics.RecordTodoOperation("get", err)
		if err != nil {
			return apperrors.NewDatabaseError("get todo", err)
		}

		// A miss is not an error: 200 with an empty body
		if todo == nil {
			return ctx.Status(fiber.StatusOK).Send(nil)
		}

		return ctx.JSON(todo)
	}
}

func HandleUpdateTodo(timeout time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ts := identity.StoreFromCtx(ctx)
		todoID := ctx.Params("todoId")

		var req RequestTodoUpdate
		if err := ctx.BodyParser(&req); err != nil {
			return apperrors.NewBadRequest("Invalid request body")
		}

		dbCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		// Read-then-write: omitted fields coalesce to the stored values.
		// Not atomic under concurrent updates to the same id.
		previous, err := ts.Get(dbCtx, todoID)
		if err != nil {
			metrics.RecordTodoOperation("update", err)
			return apperrors.NewDatabaseError("update todo", err)
		}
		if previous == nil {
			return apperrors.NewTodoNotFound()
		}

		text := previous.Text
		if req.Text != nil {
			text = *req.Text
		}
		priority := previous.Priority
		if req.Priority != nil {
			priority = *req.Priority
		}
		status := previous.Status
		if req.Status != nil {
			status = *req.Status
		}

		err = ts.Update(dbCtx, todoID, text, priority, status)
		metrics.RecordTodoOperation("update", err)
		if err != nil {
			return apperrors.NewDatabaseError("update todo", err)
		}

		return ctx.JSON(fiber.Map{"message": "Todo Updated"})
	}
}

func HandleDeleteTodo(timeout time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ts := identity.StoreFromCtx(ctx)
		todoID := ctx.Params("todoId")

		dbCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		// No existence check: deleting an absent id still acks.
		err := ts.Delete(dbCtx, todoID)
		metrics.RecordTodoOperation("delete", err)
		if err != nil {
			return apperrors.NewDatabaseError("delete todo", err)
		}

		return ctx.JSON(fiber.Map{"message": "Todo Deleted"})
	}
}
