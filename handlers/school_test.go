package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schooldir/database"
	"schooldir/dto"
	"schooldir/pagination"
	"schooldir/router"
	"schooldir/utils"
	"schooldir/validation"
)

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	viper.Set("app.env", "test")
	viper.Set("jwt.secret", "handler-test-secret")
	viper.Set("jwt.expiration_hours", 1)
	viper.Set("pagination.max_limit", 100)

	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&database.TradeSchool{}, &database.Student{}, &database.User{}))
	database.DB = db
	utils.InitValidator()

	t.Cleanup(func() {
		sqlDB.Close()
		database.DB = nil
	})

	return router.New()
}

func performRequest(engine *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out))
	return out
}

func authToken(t *testing.T) string {
	t.Helper()
	token, _, err := utils.GenerateToken(1, "admin")
	require.NoError(t, err)
	return token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func seedAPISchools(t *testing.T, schools ...database.TradeSchool) []database.TradeSchool {
	t.Helper()
	for i := range schools {
		require.NoError(t, database.DB.Create(&schools[i]).Error)
	}
	return schools
}

func TestCreateSchoolEndpoint(t *testing.T) {
	engine := setupAPI(t)
	token := authToken(t)

	t.Run("valid body", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodPost, "/api/schools", gin.H{
			"name":     "Lincoln Tech",
			"location": "New Jersey",
			"programs": []string{"Welding", "HVAC"},
			"website":  "https://www.lincolntech.edu",
		}, bearer(token))

		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
		school := decodeBody[database.TradeSchool](t, recorder)
		assert.NotZero(t, school.ID)
		assert.True(t, school.Accredited)
	})

	t.Run("all violations reported together", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodPost, "/api/schools", gin.H{
			"name":     "",
			"location": "X",
			"programs": []string{},
			"website":  "ftp://example.com",
		}, bearer(token))

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		var envelope struct {
			StatusCode int                `json:"statusCode"`
			Error      string             `json:"error"`
			Message    string             `json:"message"`
			Details    []validation.Entry `json:"details"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		assert.Equal(t, 400, envelope.StatusCode)
		assert.Equal(t, "Validation Error", envelope.Error)
		assert.Equal(t, "Invalid request data", envelope.Message)
		require.Len(t, envelope.Details, 3)
		assert.Equal(t, "name", envelope.Details[0].Field)
		assert.Equal(t, "programs", envelope.Details[1].Field)
		assert.Equal(t, "website", envelope.Details[2].Field)
	})

	t.Run("missing required fields message", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodPost, "/api/schools", gin.H{
			"website": "https://example.com",
		}, bearer(token))

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		envelope := decodeBody[dto.ErrorEnvelope](t, recorder)
		assert.Equal(t, "Missing required fields: name, location, programs", envelope.Message)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodPost, "/api/schools", gin.H{
			"name":     "A",
			"location": "X",
			"programs": []string{"A"},
			"website":  "https://example.com",
			"bogus":    true,
		}, bearer(token))

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/schools", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestWriteEndpointsRequireAuth(t *testing.T) {
	engine := setupAPI(t)

	body := gin.H{
		"name":     "A",
		"location": "X",
		"programs": []string{"A"},
		"website":  "https://example.com",
	}

	t.Run("missing token", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodPost, "/api/schools", body, nil)
		require.Equal(t, http.StatusUnauthorized, recorder.Code)
		envelope := decodeBody[dto.ErrorEnvelope](t, recorder)
		assert.Equal(t, "Authentication token required. Please login first.", envelope.Message)
	})

	t.Run("invalid token", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodPost, "/api/schools", body, bearer("garbage.token.here"))
		require.Equal(t, http.StatusUnauthorized, recorder.Code)
		envelope := decodeBody[dto.ErrorEnvelope](t, recorder)
		assert.Equal(t, "Invalid or expired token. Please login again.", envelope.Message)
	})

	t.Run("reads stay open", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodGet, "/api/schools", nil, nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestGetSchoolEndpoint(t *testing.T) {
	engine := setupAPI(t)
	seeded := seedAPISchools(t, database.TradeSchool{
		Name: "Tulsa Welding School", Location: "Tulsa",
		Programs: []string{"Welding"}, Website: "https://www.tws.edu", Accredited: true,
	})

	t.Run("found", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodGet, fmt.Sprintf("/api/schools/%d", seeded[0].ID), nil, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		school := decodeBody[database.TradeSchool](t, recorder)
		assert.Equal(t, "Tulsa Welding School", school.Name)
	})

	t.Run("absent", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodGet, "/api/schools/99999", nil, nil)
		require.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"error":"School not found"}`, recorder.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodGet, "/api/schools/abc", nil, nil)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		envelope := decodeBody[dto.ErrorEnvelope](t, recorder)
		assert.Equal(t, "Validation Error", envelope.Error)
	})
}

func TestListSchoolsEndpoint(t *testing.T) {
	engine := setupAPI(t)
	seedAPISchools(t,
		database.TradeSchool{Name: "Alpha", Location: "Portland, OR", Programs: []string{"Welding"}, Website: "https://a.com", Accredited: true},
		database.TradeSchool{Name: "Beta", Location: "Phoenix, AZ", Programs: []string{"HVAC"}, Website: "https://b.com", Accredited: true},
		database.TradeSchool{Name: "Gamma", Location: "Portland, ME", Programs: []string{"Welding"}, Website: "https://c.com", Accredited: false},
	)

	t.Run("default page", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodGet, "/api/schools", nil, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		result := decodeBody[pagination.Result[database.TradeSchool]](t, recorder)
		assert.EqualValues(t, 3, result.Meta.Total)
		assert.Equal(t, 1, result.Meta.Page)
		assert.Equal(t, 15, result.Meta.Limit)
		assert.Equal(t, 1, result.Meta.LastPage)
		assert.False(t, result.Meta.HasNextPage)
		assert.False(t, result.Meta.HasPreviousPage)
		require.Len(t, result.Data, 3)
	})

	t.Run("explicit paging", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodGet, "/api/schools?page=2&limit=2", nil, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		result := decodeBody[pagination.Result[database.TradeSchool]](t, recorder)
		assert.Equal(t, 2, result.Meta.Page)
		assert.Equal(t, 2, result.Meta.LastPage)
		assert.True(t, result.Meta.HasPreviousPage)
		require.Len(t, result.Data, 1)
	})

	t.Run("filters", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodGet, "/api/schools?program=Welding&location=portland", nil, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		result := decodeBody[pagination.Result[database.TradeSchool]](t, recorder)
		assert.EqualValues(t, 2, result.Meta.Total)
	})

	t.Run("explicit zero page and limit clamp instead of defaulting", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodGet, "/api/schools?page=0&limit=0", nil, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		result := decodeBody[pagination.Result[database.TradeSchool]](t, recorder)
		assert.Equal(t, 1, result.Meta.Page)
		assert.Equal(t, 1, result.Meta.Limit)
		require.Len(t, result.Data, 1)
	})

	t.Run("non-numeric page", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodGet, "/api/schools?page=abc", nil, nil)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("empty page past the end", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodGet, "/api/schools?page=50", nil, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		result := decodeBody[pagination.Result[database.TradeSchool]](t, recorder)
		assert.NotNil(t, result.Data)
		assert.Empty(t, result.Data)
		assert.EqualValues(t, 3, result.Meta.Total)
	})
}

func TestUpdateSchoolEndpoint(t *testing.T) {
	engine := setupAPI(t)
	token := authToken(t)
	seeded := seedAPISchools(t, database.TradeSchool{
		Name: "Alpha", Location: "Portland", Programs: []string{"Welding"},
		Website: "https://a.com", Accredited: true,
	})

	t.Run("partial update", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodPut, fmt.Sprintf("/api/schools/%d", seeded[0].ID),
			gin.H{"location": "Salem"}, bearer(token))

		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
		school := decodeBody[database.TradeSchool](t, recorder)
		assert.Equal(t, "Salem", school.Location)
		assert.Equal(t, "Alpha", school.Name)
	})

	t.Run("empty body rejected", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodPut, fmt.Sprintf("/api/schools/%d", seeded[0].ID),
			gin.H{}, bearer(token))

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("absent target", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodPut, "/api/schools/99999",
			gin.H{"location": "Salem"}, bearer(token))

		require.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"error":"School not found"}`, recorder.Body.String())
	})
}

func TestDeleteSchoolEndpoint(t *testing.T) {
	engine := setupAPI(t)
	token := authToken(t)
	seeded := seedAPISchools(t, database.TradeSchool{
		Name: "Alpha", Location: "Portland", Programs: []string{"Welding"},
		Website: "https://a.com", Accredited: true,
	})

	path := fmt.Sprintf("/api/schools/%d", seeded[0].ID)

	recorder := performRequest(engine, http.MethodDelete, path, nil, bearer(token))
	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())

	recorder = performRequest(engine, http.MethodDelete, path, nil, bearer(token))
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"School not found"}`, recorder.Body.String())
}

func TestProgramsAndStatsEndpoints(t *testing.T) {
	engine := setupAPI(t)
	seedAPISchools(t,
		database.TradeSchool{Name: "A", Location: "X", Programs: []string{"Welding", "HVAC"}, Website: "https://a.com", Accredited: true},
		database.TradeSchool{Name: "B", Location: "Y", Programs: []string{"HVAC"}, Website: "https://b.com", Accredited: false},
	)

	recorder := performRequest(engine, http.MethodGet, "/api/programs", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	programs := decodeBody[dto.ProgramsResp](t, recorder)
	assert.Equal(t, 2, programs.Count)
	assert.Equal(t, []string{"HVAC", "Welding"}, programs.Programs)

	recorder = performRequest(engine, http.MethodGet, "/api/stats", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	stats := decodeBody[dto.StatsResp](t, recorder)
	assert.EqualValues(t, 2, stats.TotalSchools)
	assert.EqualValues(t, 1, stats.AccreditedSchools)
	assert.Equal(t, 2, stats.TotalPrograms)
}

func TestSchoolStudentsEndpoint(t *testing.T) {
	engine := setupAPI(t)
	seeded := seedAPISchools(t, database.TradeSchool{
		Name: "A", Location: "X", Programs: []string{"Welding"},
		Website: "https://a.com", Accredited: true,
	})

	student := database.Student{
		FirstName: "Amy", LastName: "Adams", Email: "aa@example.com",
		EnrolledProgram: "Welding", Status: "enrolled", SchoolID: &seeded[0].ID,
	}
	require.NoError(t, database.DB.Create(&student).Error)

	recorder := performRequest(engine, http.MethodGet, fmt.Sprintf("/api/schools/%d/students", seeded[0].ID), nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	result := decodeBody[pagination.Result[database.Student]](t, recorder)
	assert.EqualValues(t, 1, result.Meta.Total)

	recorder = performRequest(engine, http.MethodGet, "/api/schools/99999/students", nil, nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"error":"School not found"}`, recorder.Body.String())
}

func TestStudentsEndpoint(t *testing.T) {
	engine := setupAPI(t)

	students := []database.Student{
		{FirstName: "A", LastName: "A", Email: "a@example.com", EnrolledProgram: "Welding", Status: "enrolled"},
		{FirstName: "B", LastName: "B", Email: "b@example.com", EnrolledProgram: "HVAC", Status: "graduated"},
	}
	for i := range students {
		require.NoError(t, database.DB.Create(&students[i]).Error)
	}

	recorder := performRequest(engine, http.MethodGet, "/api/students?status=graduated", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	result := decodeBody[pagination.Result[database.Student]](t, recorder)
	assert.EqualValues(t, 1, result.Meta.Total)

	recorder = performRequest(engine, http.MethodGet, "/api/students?status=expelled", nil, nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	envelope := decodeBody[dto.ErrorEnvelope](t, recorder)
	assert.Equal(t, "Validation Error", envelope.Error)
}

func TestGetStudentEndpoint(t *testing.T) {
	engine := setupAPI(t)

	student := database.Student{
		FirstName: "Amy", LastName: "Adams", Email: "amy@example.com",
		EnrolledProgram: "Welding", Status: "enrolled",
	}
	require.NoError(t, database.DB.Create(&student).Error)
	require.NotEmpty(t, student.UUID)

	t.Run("found", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodGet, "/api/students/"+student.UUID, nil, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		got := decodeBody[database.Student](t, recorder)
		assert.Equal(t, "Amy", got.FirstName)
	})

	t.Run("absent", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodGet, "/api/students/0f8fad5b-d9cb-469f-a165-70867728950e", nil, nil)
		require.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"error":"Student not found"}`, recorder.Body.String())
	})

	t.Run("malformed uuid", func(t *testing.T) {
		recorder := performRequest(engine, http.MethodGet, "/api/students/not-a-uuid", nil, nil)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	engine := setupAPI(t)

	recorder := performRequest(engine, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	health := decodeBody[dto.HealthResp](t, recorder)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "connected", health.Database)
	assert.False(t, health.Timestamp.IsZero())
}
