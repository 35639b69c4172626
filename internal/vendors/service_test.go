package vendors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memVendorRepo is an in-memory Repository.
type memVendorRepo struct {
	vendors map[int64]*Vendor
	next    int64
}

func newMemVendorRepo() *memVendorRepo {
	return &memVendorRepo{vendors: map[int64]*Vendor{}}
}

func (r *memVendorRepo) Create(ctx context.Context, v *Vendor) error {
	r.next++
	v.ID = r.next
	clone := *v
	r.vendors[v.ID] = &clone
	return nil
}

func (r *memVendorRepo) GetByID(ctx context.Context, id int64) (*Vendor, error) {
	v, ok := r.vendors[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *memVendorRepo) List(ctx context.Context, filter Filter) ([]*Vendor, int, error) {
	var out []*Vendor
	for _, v := range r.vendors {
		clone := *v
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *memVendorRepo) Update(ctx context.Context, v *Vendor) error {
	if _, ok := r.vendors[v.ID]; !ok {
		return ErrNotFound
	}
	clone := *v
	r.vendors[v.ID] = &clone
	return nil
}

func TestVendorService(t *testing.T) {
	ctx := context.Background()

	t.Run("create trims and requires a name", func(t *testing.T) {
		svc := NewService(newMemVendorRepo())

		v, err := svc.Create(ctx, "  Seaside Group  ")
		require.NoError(t, err)
		assert.Equal(t, "Seaside Group", v.Name)
		assert.True(t, v.IsActive)

		_, err = svc.Create(ctx, "   ")
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("rename", func(t *testing.T) {
		svc := NewService(newMemVendorRepo())
		v, err := svc.Create(ctx, "Seaside Group")
		require.NoError(t, err)

		renamed, err := svc.Rename(ctx, v.ID, "Seaside Hospitality")
		require.NoError(t, err)
		assert.Equal(t, "Seaside Hospitality", renamed.Name)

		_, err = svc.Rename(ctx, v.ID, " ")
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("deactivate keeps the record", func(t *testing.T) {
		svc := NewService(newMemVendorRepo())
		v, err := svc.Create(ctx, "Seaside Group")
		require.NoError(t, err)

		require.NoError(t, svc.Deactivate(ctx, v.ID))

		got, err := svc.GetByID(ctx, v.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})

	t.Run("unknown vendor", func(t *testing.T) {
		svc := NewService(newMemVendorRepo())
		_, err := svc.GetByID(ctx, 404)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
