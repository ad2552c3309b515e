package httpHandler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmrating-server/entities"
	httpHandler "filmrating-server/handlers/http"
	"filmrating-server/repositories"
	"filmrating-server/usecases"
)

func newTestRouter(repo repositories.DataRepository[entities.User]) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := httpHandler.NewUserHandler(usecases.NewUserUseCase(repo))

	r := gin.New()
	users := r.Group("/api/users")
	{
		users.GET("", handler.GetAllUsers)
		users.POST("", handler.CreateUser)
		users.GET("/:key", handler.GetUserByKey)
		users.PUT("/:key", handler.UpdateUser)
		users.DELETE("/:key", handler.DeleteUser)
	}
	return r
}

func perform(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validUser() entities.User {
	return entities.User{
		LastName:  "Machin",
		FirstName: "Luc",
		Mobile:    "0606070809",
		Email:     "luc1@test.com",
		Password:  "Toto1234!",
		Street:    "Chemin de Bellevue",
		City:      "Annecy-le-Vieux",
		Country:   "France",
	}
}

func createUser(t *testing.T, r *gin.Engine, u entities.User) entities.User {
	t.Helper()
	w := perform(r, http.MethodPost, "/api/users", u)
	require.Equal(t, http.StatusCreated, w.Code)

	var created entities.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func TestCreateUser(t *testing.T) {
	r := newTestRouter(repositories.NewUserRepoMock())

	w := perform(r, http.MethodPost, "/api/users", validUser())
	require.Equal(t, http.StatusCreated, w.Code)

	var created entities.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID, "store must assign the id")
	assert.False(t, created.CreatedAt.IsZero(), "creation date must be defaulted")
	assert.Equal(t, fmt.Sprintf("/api/users/%d", created.ID), w.Header().Get("Location"))

	// Round trip: the created record is retrievable under the Location id
	w = perform(r, http.MethodGet, fmt.Sprintf("/api/users/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched entities.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "luc1@test.com", fetched.Email)
	assert.Equal(t, "0606070809", fetched.Mobile)
	assert.Equal(t, "Luc", fetched.FirstName)
}

func TestCreateUser_InvalidBody(t *testing.T) {
	repo := repositories.NewUserRepoMock()
	r := newTestRouter(repo)

	cases := []struct {
		name   string
		mutate func(u *entities.User)
	}{
		{"missing email", func(u *entities.User) { u.Email = "" }},
		{"malformed email", func(u *entities.User) { u.Email = "not-an-email" }},
		{"email too short", func(u *entities.User) { u.Email = "a@b.c" }},
		{"missing password", func(u *entities.User) { u.Password = "" }},
		{"mobile not starting with 0", func(u *entities.User) { u.Mobile = "1606070809" }},
		{"mobile too short", func(u *entities.User) { u.Mobile = "060607080" }},
		{"mobile not numeric", func(u *entities.User) { u.Mobile = "06060x0809" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := validUser()
			tc.mutate(&u)
			w := perform(r, http.MethodPost, "/api/users", u)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	// Validation rejects before any store call
	assert.Equal(t, 0, repo.Count())
}

func TestGetAllUsers(t *testing.T) {
	r := newTestRouter(repositories.NewUserRepoMock())

	w := perform(r, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []entities.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Empty(t, users)

	createUser(t, r, validUser())
	other := validUser()
	other.Email = "luc2@test.com"
	createUser(t, r, other)

	w = perform(r, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestGetUserByID_Unknown(t *testing.T) {
	r := newTestRouter(repositories.NewUserRepoMock())

	w := perform(r, http.MethodGet, "/api/users/12345", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserByEmail_CaseInsensitive(t *testing.T) {
	r := newTestRouter(repositories.NewUserRepoMock())
	created := createUser(t, r, validUser())

	for _, email := range []string{"luc1@test.com", "LUC1@TEST.COM", "Luc1@Test.com"} {
		w := perform(r, http.MethodGet, "/api/users/"+email, nil)
		require.Equal(t, http.StatusOK, w.Code, "lookup of %s", email)

		var fetched entities.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
		assert.Equal(t, created.ID, fetched.ID)
	}

	w := perform(r, http.MethodGet, "/api/users/nobody@test.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUser(t *testing.T) {
	r := newTestRouter(repositories.NewUserRepoMock())
	created := createUser(t, r, validUser())

	created.LastName = "Modified"
	w := perform(r, http.MethodPut, fmt.Sprintf("/api/users/%d", created.ID), created)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = perform(r, http.MethodGet, fmt.Sprintf("/api/users/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched entities.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Modified", fetched.LastName)
}

func TestUpdateUser_IDMismatch(t *testing.T) {
	repo := repositories.NewUserRepoMock()
	r := newTestRouter(repo)
	created := createUser(t, r, validUser())

	body := created
	body.LastName = "Hijacked"
	w := perform(r, http.MethodPut, fmt.Sprintf("/api/users/%d", created.ID+1), body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No store mutation happened
	w = perform(r, http.MethodGet, fmt.Sprintf("/api/users/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched entities.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Machin", fetched.LastName)
}

func TestUpdateUser_Unknown(t *testing.T) {
	repo := repositories.NewUserRepoMock()
	r := newTestRouter(repo)

	body := validUser()
	body.ID = 999
	w := perform(r, http.MethodPut, "/api/users/999", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, repo.Count())
}

func TestUpdateUser_NonIntegerKey(t *testing.T) {
	r := newTestRouter(repositories.NewUserRepoMock())

	w := perform(r, http.MethodPut, "/api/users/not-a-number", validUser())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUser(t *testing.T) {
	r := newTestRouter(repositories.NewUserRepoMock())
	created := createUser(t, r, validUser())

	w := perform(r, http.MethodDelete, fmt.Sprintf("/api/users/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = perform(r, http.MethodGet, fmt.Sprintf("/api/users/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Deleting again is a 404, not a silent no-op
	w = perform(r, http.MethodDelete, fmt.Sprintf("/api/users/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	r := newTestRouter(repositories.NewUserRepoMock())
	createUser(t, r, validUser())

	dup := validUser()
	dup.Email = "LUC1@TEST.COM" // same address, different case
	w := perform(r, http.MethodPost, "/api/users", dup)
	assert.Equal(t, http.StatusInternalServerError, w.Code, "duplicate email is a store constraint violation")
}

// Full lifecycle: create, fetch, delete, fetch again.
func TestUserLifecycle(t *testing.T) {
	r := newTestRouter(repositories.NewUserRepoMock())

	created := createUser(t, r, validUser())
	loc := fmt.Sprintf("/api/users/%d", created.ID)

	w := perform(r, http.MethodGet, loc, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(r, http.MethodDelete, loc, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = perform(r, http.MethodGet, loc, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
