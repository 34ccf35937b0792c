package service

import (
	"context"
	"errors"
	"testing"

	internal_errors "github.com/itchan-dev/punchcards/backend/internal/errors"
	"github.com/itchan-dev/punchcards/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockPersonStorage struct {
	createPersonFunc func(data domain.PersonCreationData) (domain.Person, error)
	listPeopleFunc   func() ([]domain.Person, error)
}

func (m *MockPersonStorage) CreatePerson(ctx context.Context, data domain.PersonCreationData) (domain.Person, error) {
	if m.createPersonFunc != nil {
		return m.createPersonFunc(data)
	}
	return domain.Person{Id: 1, Name: data.Name, Email: data.Email, PhoneNumber: data.PhoneNumber}, nil
}

func (m *MockPersonStorage) ListPeople(ctx context.Context) ([]domain.Person, error) {
	if m.listPeopleFunc != nil {
		return m.listPeopleFunc()
	}
	return nil, nil
}

type MockPersonValidator struct {
	nameFunc func(name string) error
}

func (m *MockPersonValidator) Name(name string) error {
	if m.nameFunc != nil {
		return m.nameFunc(name)
	}
	return nil
}

func strPtr(s string) *string { return &s }

func TestPersonCreate(t *testing.T) {
	t.Run("absent optionals stay absent", func(t *testing.T) {
		s := NewPerson(&MockPersonStorage{}, &MockPersonValidator{})

		person, err := s.Create(context.Background(), domain.PersonCreationData{Name: "A"})

		require.NoError(t, err)
		assert.Equal(t, "A", person.Name)
		assert.Nil(t, person.Email)
		assert.Nil(t, person.PhoneNumber)
	})

	t.Run("blank optionals become absent", func(t *testing.T) {
		var stored domain.PersonCreationData
		mockStorage := &MockPersonStorage{
			createPersonFunc: func(data domain.PersonCreationData) (domain.Person, error) {
				stored = data
				return domain.Person{}, nil
			},
		}
		s := NewPerson(mockStorage, &MockPersonValidator{})

		_, err := s.Create(context.Background(), domain.PersonCreationData{Name: "A", Email: strPtr(""), PhoneNumber: strPtr("  ")})

		require.NoError(t, err)
		assert.Nil(t, stored.Email)
		assert.Nil(t, stored.PhoneNumber)
	})

	t.Run("values are sanitized", func(t *testing.T) {
		var stored domain.PersonCreationData
		mockStorage := &MockPersonStorage{
			createPersonFunc: func(data domain.PersonCreationData) (domain.Person, error) {
				stored = data
				return domain.Person{}, nil
			},
		}
		s := NewPerson(mockStorage, &MockPersonValidator{})

		_, err := s.Create(context.Background(), domain.PersonCreationData{Name: "<i>Alice</i>", PhoneNumber: strPtr(" 555-0100 ")})

		require.NoError(t, err)
		assert.Equal(t, "Alice", stored.Name)
		require.NotNil(t, stored.PhoneNumber)
		assert.Equal(t, "555-0100", *stored.PhoneNumber)
	})

	t.Run("invalid name", func(t *testing.T) {
		invalid := &internal_errors.ValidationError{Message: "name is required"}
		mockStorage := &MockPersonStorage{
			createPersonFunc: func(data domain.PersonCreationData) (domain.Person, error) {
				t.Fatal("storage must not be called")
				return domain.Person{}, nil
			},
		}
		s := NewPerson(mockStorage, &MockPersonValidator{nameFunc: func(string) error { return invalid }})

		_, err := s.Create(context.Background(), domain.PersonCreationData{Name: ""})
		assert.ErrorIs(t, err, invalid)
	})
}

func TestPersonList(t *testing.T) {
	want := []domain.Person{{Id: 1, Name: "Alice"}, {Id: 2, Name: "Bob", Email: strPtr("bob@example.com")}}
	mockStorage := &MockPersonStorage{listPeopleFunc: func() ([]domain.Person, error) { return want, nil }}
	s := NewPerson(mockStorage, &MockPersonValidator{})

	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	mockStorage.listPeopleFunc = func() ([]domain.Person, error) { return nil, errors.New("db down") }
	_, err = s.List(context.Background())
	assert.Error(t, err)
}
