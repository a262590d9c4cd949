package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradepath/gradepath-api/internal/models"
)

func TestStudentRepositoryFindByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	cgpa := 3.2
	rows := sqlmock.NewRows([]string{"id", "email", "name", "level", "current_cgpa", "target_cgpa", "completed_units", "created_at", "updated_at"}).
		AddRow("s1", "a@b.c", "Ada", "300", cgpa, 4.5, 56.0, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, name, level, current_cgpa, target_cgpa, completed_units, created_at, updated_at")).
		WithArgs("a@b.c").
		WillReturnRows(rows)

	student, err := repo.FindByEmail(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "Ada", student.Name)
	require.NotNil(t, student.CurrentCGPA)
	assert.Equal(t, 3.2, *student.CurrentCGPA)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO students").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), &models.Student{Email: "a@b.c", Name: "Ada", Level: "300", TargetCGPA: 4.5})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryUpdateCGPAMissingStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("UPDATE students SET current_cgpa").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateCGPA(context.Background(), "missing@b.c", 3.5, nil)
	require.ErrorIs(t, err, ErrNoRowsAffected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
