package session

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pageza/mealplanner/backend/internal/model"
	"github.com/pageza/mealplanner/backend/internal/testhelpers"
)

const samplePayload = `[{"item":"Oats","quantity":"1 lb","category":"Pantry","link":null,"protein":"13g","carbs":"68g","fats":"7g","calories":"389"}]`

// runStoreContract exercises the behaviour every Store must share.
func runStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create then get", func(t *testing.T) {
		id := uuid.NewString()
		require.NoError(t, store.Create(ctx, id, json.RawMessage(samplePayload)))

		got, found, err := store.Get(ctx, id)
		require.NoError(t, err)
		require.True(t, found)
		assert.JSONEq(t, samplePayload, string(got))
	})

	t.Run("never created is not found", func(t *testing.T) {
		got, found, err := store.Get(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, got)
	})

	t.Run("delete then get is not found", func(t *testing.T) {
		id := uuid.NewString()
		require.NoError(t, store.Create(ctx, id, json.RawMessage(samplePayload)))
		require.NoError(t, store.Delete(ctx, id))

		_, found, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete of unknown id is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, uuid.NewString()))
	})

	t.Run("duplicate id returns latest payload", func(t *testing.T) {
		id := uuid.NewString()
		require.NoError(t, store.Create(ctx, id, json.RawMessage(`[{"item":"first"}]`)))
		require.NoError(t, store.Create(ctx, id, json.RawMessage(`[{"item":"second"}]`)))

		got, found, err := store.Get(ctx, id)
		require.NoError(t, err)
		require.True(t, found)
		assert.JSONEq(t, `[{"item":"second"}]`, string(got))
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}

func TestSQLStoreSQLite(t *testing.T) {
	runStoreContract(t, NewSQLStore(testhelpers.SetupSQLite(t)))
}

func TestSQLStorePostgres(t *testing.T) {
	db, err := gorm.Open(postgres.Open(testhelpers.PostgresDSN(t)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.GroceryListRecord{}))

	runStoreContract(t, NewSQLStore(db))
}

func TestRedisStore(t *testing.T) {
	runStoreContract(t, NewRedisStore(testhelpers.SetupRedis(t)))
}

func TestS3Store(t *testing.T) {
	runStoreContract(t, NewS3Store(newFakeBucket(), "grocery-test"))
}

func TestS3StoreUsesJSONObjectKeys(t *testing.T) {
	bucket := newFakeBucket()
	store := NewS3Store(bucket, "grocery-test")

	require.NoError(t, store.Create(context.Background(), "abc", json.RawMessage(samplePayload)))
	_, ok := bucket.objects["grocery-lists/abc.json"]
	assert.True(t, ok)
}

// fakeBucket is an in-memory ObjectAPI
type fakeBucket struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{objects: make(map[string][]byte)}
}

func (b *fakeBucket) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (b *fakeBucket) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.objects[*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (b *fakeBucket) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func (b *fakeBucket) HeadBucket(ctx context.Context, in *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, nil
}
