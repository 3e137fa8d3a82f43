package tests

import (
	"context"
	"os"
	"testing"

	"article-hub/backend/common"
	"article-hub/backend/model"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	common.SQLitePath = ":memory:"
	if os.Getenv("REDIS_CONN_STRING") == "" {
		common.RedisEnabled = false
		common.RDB = nil
	}

	if err := model.InitDB(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func TestRedisConnection(t *testing.T) {
	if !common.RedisEnabled {
		t.Skip("Redis not enabled, skipping test")
	}
	err := common.RDB.Set(context.Background(), "test-key", "test-value", 0).Err()
	assert.NoError(t, err)
	val, err := common.RDB.Get(context.Background(), "test-key").Result()
	assert.NoError(t, err)
	assert.Equal(t, "test-value", val)
}

func TestPasswordHash(t *testing.T) {
	hash, err := common.Password2Hash("testpass")
	assert.NoError(t, err)
	assert.True(t, common.ValidatePasswordAndHash("testpass", hash))
	assert.False(t, common.ValidatePasswordAndHash("wrongpass", hash))
}

func TestRootAccountSeeded(t *testing.T) {
	root, err := model.GetUserByPK(1)
	assert.NoError(t, err)
	assert.Equal(t, common.RoleRootUser, root.Role)
}

func TestUserInsertAndQuery(t *testing.T) {
	user := &model.User{
		FullName: "Test User",
		Password: "testpass",
		Email:    "test@example.com",
		Role:     common.RoleCommonUser,
		Status:   common.UserStatusEnabled,
	}
	err := user.Insert()
	assert.NoError(t, err)
	assert.NotEmpty(t, user.UUID)

	queryUser, err := model.GetUserByUUID(user.UUID)
	assert.NoError(t, err)
	assert.Equal(t, user.Email, queryUser.Email)

	login := &model.User{Email: "test@example.com", Password: "testpass"}
	assert.NoError(t, login.ValidateAndFill())
	assert.Equal(t, user.PK, login.PK)

	wrong := &model.User{Email: "test@example.com", Password: "nope"}
	assert.Error(t, wrong.ValidateAndFill())

	assert.NoError(t, user.Delete())
}
