package usecase

import (
	"testing"

	"simagang-backend/internal/domain"
	"simagang-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignTask(t *testing.T, f *fixture) *model.Task {
	t.Helper()

	task, err := f.taskUsecase().Assign(f.mentor, AssignTaskInput{
		InternshipID: f.internship.ID,
		Title:        "Implementasi halaman login",
		Description:  "Pakai komponen form yang sudah ada",
		DueDate:      "2026-02-01",
	})
	require.NoError(t, err)
	return task
}

func TestAssignTask(t *testing.T) {
	f := newFixture(t)

	task := assignTask(t, f)
	assert.Equal(t, model.TaskTodo, task.Status)
	assert.Equal(t, f.mentor.UserID, task.MentorID)

	t.Run("intern tidak bisa membuat task", func(t *testing.T) {
		_, err := f.taskUsecase().Assign(f.intern, AssignTaskInput{
			InternshipID: f.internship.ID,
			Title:        "Task liar",
		})
		require.Error(t, err)
		assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))
	})

	t.Run("mentor lain tidak bisa membuat task", func(t *testing.T) {
		_, err := f.taskUsecase().Assign(f.otherMentor, AssignTaskInput{
			InternshipID: f.internship.ID,
			Title:        "Task liar",
		})
		require.Error(t, err)
		assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))
	})

	t.Run("title wajib", func(t *testing.T) {
		_, err := f.taskUsecase().Assign(f.mentor, AssignTaskInput{InternshipID: f.internship.ID})
		require.Error(t, err)
		assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
	})
}

func TestSetTaskStatusFreeTransitions(t *testing.T) {
	f := newFixture(t)
	uc := f.taskUsecase()
	task := assignTask(t, f)

	// Transisi bebas, termasuk mundur dari completed ke todo.
	for _, status := range []string{
		model.TaskInProgress,
		model.TaskCompleted,
		model.TaskTodo,
		model.TaskCompleted,
	} {
		updated, err := uc.SetStatus(f.intern, task.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	// Mentor pemberi task juga boleh.
	updated, err := uc.SetStatus(f.mentor, task.ID, model.TaskInProgress)
	require.NoError(t, err)
	assert.Equal(t, model.TaskInProgress, updated.Status)
}

func TestSetTaskStatusValidation(t *testing.T) {
	f := newFixture(t)
	uc := f.taskUsecase()
	task := assignTask(t, f)

	_, err := uc.SetStatus(f.intern, task.ID, "done")
	require.Error(t, err)
	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))

	_, err = uc.SetStatus(f.otherMentor, task.ID, model.TaskCompleted)
	require.Error(t, err)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))
}

func TestUpdateAndRemoveTaskOnlyAssigningMentor(t *testing.T) {
	f := newFixture(t)
	uc := f.taskUsecase()
	task := assignTask(t, f)

	_, err := uc.Update(f.otherMentor, task.ID, UpdateTaskInput{Title: "Diubah"})
	require.Error(t, err)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	_, err = uc.Update(f.intern, task.ID, UpdateTaskInput{Title: "Diubah"})
	require.Error(t, err)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	updated, err := uc.Update(f.mentor, task.ID, UpdateTaskInput{Title: "Revisi halaman login"})
	require.NoError(t, err)
	assert.Equal(t, "Revisi halaman login", updated.Title)

	err = uc.Remove(f.intern, task.ID)
	require.Error(t, err)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))

	require.NoError(t, uc.Remove(f.mentor, task.ID))

	_, err = uc.SetStatus(f.mentor, task.ID, model.TaskCompleted)
	require.Error(t, err)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}

func TestListTasks(t *testing.T) {
	f := newFixture(t)
	uc := f.taskUsecase()
	assignTask(t, f)
	assignTask(t, f)

	list, err := uc.List(f.intern, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = uc.List(f.mentor, f.internship.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = uc.List(f.otherMentor, f.internship.ID)
	require.Error(t, err)
	assert.Equal(t, domain.CodeForbidden, domain.CodeOf(err))
}
