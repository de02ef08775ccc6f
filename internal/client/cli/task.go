package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
)

// List prints the signed-in user's tasks, oldest first.
func (a *App) List(ctx context.Context) error {
	tasks, err := a.client.ListTasks(ctx)
	if err != nil {
		a.logger.Error(ctx, "could not list tasks", "error", err.Error())
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks yet. Use 'add' to create one.")
		return nil
	}

	for _, task := range tasks {
		fmt.Printf("%s  [%s]  %s\n", task.ID, task.Status, task.Title)
		if task.Description != "" {
			fmt.Printf("    %s\n", task.Description)
		}
	}
	return nil
}

// Add prompts for a title and an optional description and creates a task.
// The new task starts in the pending status.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.client.CreateTask(ctx, title, description, "")
	if err != nil {
		a.logger.Error(ctx, "could not create task", "error", err.Error())
		return err
	}

	fmt.Printf("Created task %s\n", task.ID)
	return nil
}

// Update prompts for a task id and new field values. Fields left empty
// keep their current value.
func (a *App) Update(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter task id", os.Stdout)
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "New title (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "New description (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	status, err := getSimpleText(a.reader, "New status: pending, in-progress or completed (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	patch := client.TaskPatch{}
	if title != "" {
		patch.Title = &title
	}
	if description != "" {
		patch.Description = &description
	}
	if status != "" {
		patch.Status = &status
	}

	task, err := a.client.UpdateTask(ctx, id, patch)
	if err != nil {
		a.logger.Error(ctx, "could not update task", "error", err.Error())
		return err
	}

	fmt.Printf("Updated task %s [%s]\n", task.ID, task.Status)
	return nil
}

// Done marks a task completed.
func (a *App) Done(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter task id", os.Stdout)
	if err != nil {
		return err
	}

	status := "completed"
	task, err := a.client.UpdateTask(ctx, id, client.TaskPatch{Status: &status})
	if err != nil {
		a.logger.Error(ctx, "could not complete task", "error", err.Error())
		return err
	}

	fmt.Printf("Completed: %s\n", task.Title)
	return nil
}

// Delete removes a task permanently.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter task id", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.client.DeleteTask(ctx, id)
	if err != nil {
		a.logger.Error(ctx, "could not delete task", "error", err.Error())
		return err
	}

	fmt.Printf("Deleted: %s\n", task.Title)
	return nil
}
