package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/bundle-service/internal/domain/model"
)

func item(id int, price float64) model.SelectedItem {
	return model.SelectedItem{ID: id, Price: price, Quantity: 1}
}

func ids(items []model.SelectedItem) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestState_Add(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(s *State)
		add      model.SelectedItem
		wantErr  error
		validate func(t *testing.T, s *State)
	}{
		{
			name: "adds to empty state",
			add:  item(1, 10),
			validate: func(t *testing.T, s *State) {
				assert.Equal(t, 1, s.Size())
				assert.True(t, s.Contains(1))
			},
		},
		{
			name: "appends at end of iteration order",
			setup: func(s *State) {
				require.NoError(t, s.Add(item(1, 10)))
				require.NoError(t, s.Add(item(2, 20)))
			},
			add: item(3, 30),
			validate: func(t *testing.T, s *State) {
				assert.Equal(t, []int{1, 2, 3}, ids(s.Items()))
			},
		},
		{
			name: "rejects duplicate product",
			setup: func(s *State) {
				require.NoError(t, s.Add(item(1, 10)))
			},
			add:     item(1, 10),
			wantErr: ErrDuplicateSelection,
			validate: func(t *testing.T, s *State) {
				assert.Equal(t, 1, s.Size())
			},
		},
		{
			name: "coerces zero quantity to one",
			add:  model.SelectedItem{ID: 5, Price: 12, Quantity: 0},
			validate: func(t *testing.T, s *State) {
				got, ok := s.Get(5)
				require.True(t, ok)
				assert.Equal(t, 1, got.Quantity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			if tt.setup != nil {
				tt.setup(s)
			}

			err := s.Add(tt.add)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if tt.validate != nil {
				tt.validate(t, s)
			}
		})
	}
}

func TestState_Remove(t *testing.T) {
	t.Run("removes and preserves relative order", func(t *testing.T) {
		s := NewState()
		require.NoError(t, s.Add(item(1, 10)))
		require.NoError(t, s.Add(item(2, 20)))
		require.NoError(t, s.Add(item(3, 30)))

		require.NoError(t, s.Remove(2))

		assert.Equal(t, []int{1, 3}, ids(s.Items()))
		assert.False(t, s.Contains(2))
	})

	t.Run("returns ErrNotFound for unselected product", func(t *testing.T) {
		s := NewState()
		assert.ErrorIs(t, s.Remove(42), ErrNotFound)
	})

	t.Run("re-added item moves to the end", func(t *testing.T) {
		s := NewState()
		require.NoError(t, s.Add(item(1, 10)))
		require.NoError(t, s.Add(item(2, 20)))
		require.NoError(t, s.Remove(1))
		require.NoError(t, s.Add(item(1, 10)))

		assert.Equal(t, []int{2, 1}, ids(s.Items()))
	})
}

func TestState_SetQuantity(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(s *State)
		id       int
		quantity int
		wantErr  error
		validate func(t *testing.T, s *State)
	}{
		{
			name: "updates quantity in place",
			setup: func(s *State) {
				require.NoError(t, s.Add(item(1, 10)))
				require.NoError(t, s.Add(item(2, 20)))
			},
			id:       1,
			quantity: 5,
			validate: func(t *testing.T, s *State) {
				got, ok := s.Get(1)
				require.True(t, ok)
				assert.Equal(t, 5, got.Quantity)
				assert.Equal(t, []int{1, 2}, ids(s.Items()), "position must not change")
			},
		},
		{
			name: "zero quantity removes the item",
			setup: func(s *State) {
				require.NoError(t, s.Add(item(1, 10)))
			},
			id:       1,
			quantity: 0,
			validate: func(t *testing.T, s *State) {
				assert.False(t, s.Contains(1))
				assert.Equal(t, 0, s.Size())
			},
		},
		{
			name: "negative quantity removes the item",
			setup: func(s *State) {
				require.NoError(t, s.Add(item(1, 10)))
				require.NoError(t, s.Add(item(2, 20)))
			},
			id:       2,
			quantity: -3,
			validate: func(t *testing.T, s *State) {
				assert.Equal(t, []int{1}, ids(s.Items()))
			},
		},
		{
			name:     "unknown product returns ErrNotFound",
			id:       9,
			quantity: 2,
			wantErr:  ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			if tt.setup != nil {
				tt.setup(s)
			}

			err := s.SetQuantity(tt.id, tt.quantity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if tt.validate != nil {
				tt.validate(t, s)
			}
		})
	}
}

func TestState_Items_ReturnsCopy(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Add(item(1, 10)))

	items := s.Items()
	items[0].Quantity = 99

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, 1, got.Quantity)
}

func TestState_Clear(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Add(item(1, 10)))
	require.NoError(t, s.Add(item(2, 20)))

	s.Clear()

	assert.Equal(t, 0, s.Size())
	assert.Empty(t, s.Items())
	assert.False(t, s.Contains(1))

	// Cleared state accepts fresh additions.
	require.NoError(t, s.Add(item(2, 20)))
	assert.Equal(t, []int{2}, ids(s.Items()))
}

func BenchmarkState_AddRemove(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := NewState()
		for id := 1; id <= 10; id++ {
			_ = s.Add(model.SelectedItem{ID: id, Price: 9.9, Quantity: 1})
		}
		for id := 1; id <= 10; id++ {
			_ = s.Remove(id)
		}
	}
}
