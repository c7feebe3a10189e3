package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Username     string `json:"username" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	PasswordConf string `json:"password_conf" validate:"required,eqfield=Password"`
}

func violationFor(t *testing.T, violations Violations, param string) Violation {
	t.Helper()
	for _, v := range violations {
		if v.Param == param {
			return v
		}
	}
	t.Fatalf("no violation for param %q", param)
	return Violation{}
}

func TestCheckCollectsAllViolations(t *testing.T) {
	payload := registerPayload{
		Username:     "",
		Email:        "not-an-email",
		Password:     "secret1",
		PasswordConf: "secret2",
	}

	violations := Check(payload)
	require.Len(t, violations, 3)

	assert.Equal(t, "Username is required", violationFor(t, violations, "username").Msg)
	assert.Equal(t, "Email must be a valid email address", violationFor(t, violations, "email").Msg)
	assert.Equal(t, "Passwords don't match", violationFor(t, violations, "password_conf").Msg)
}

func TestCheckReportsWireNames(t *testing.T) {
	payload := registerPayload{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	}

	violations := Check(payload)
	require.Len(t, violations, 1)
	assert.Equal(t, "password_conf", violations[0].Param)
	assert.Equal(t, "body", violations[0].Location)
}

func TestMergeKeepsFirstReportPerParam(t *testing.T) {
	var coerced Violations
	coerced.AddWithValue("runtime", "abc", "Runtime must be a number")

	var checked Violations
	checked.Add("runtime", "Runtime is required")
	checked.Add("title", "Title is required")

	merged := coerced.Merge(checked)
	require.Len(t, merged, 2)
	assert.Equal(t, "Runtime must be a number", violationFor(t, merged, "runtime").Msg)
	assert.Equal(t, "Title is required", violationFor(t, merged, "title").Msg)
}

func TestCheckValidPayload(t *testing.T) {
	payload := registerPayload{
		Username:     "alice",
		Email:        "alice@example.com",
		Password:     "secret1",
		PasswordConf: "secret1",
	}

	assert.True(t, Check(payload).Empty())
}

func TestCheckSliceMin(t *testing.T) {
	type catalogPayload struct {
		GenreIDs []string `json:"genres" validate:"required,min=1"`
	}

	violations := Check(catalogPayload{GenreIDs: []string{}})
	require.Len(t, violations, 1)
	assert.Equal(t, "At least one genre is required", violations[0].Msg)
}

func TestSanitizeEscapesAndTrims(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
		Tags  []string
	}

	p := payload{
		Title: "  <script>alert(1)</script>  ",
		Tags:  []string{" <b>drama</b> "},
	}
	Sanitize(&p)

	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", p.Title)
	assert.Equal(t, "&lt;b&gt;drama&lt;/b&gt;", p.Tags[0])
}

func TestSanitizeIgnoresNonPointer(t *testing.T) {
	type payload struct {
		Title string
	}

	p := payload{Title: " untouched "}
	Sanitize(p)
	assert.Equal(t, " untouched ", p.Title)
}

func TestViolationsAdd(t *testing.T) {
	var violations Violations
	assert.True(t, violations.Empty())

	violations.Add("poster", "Poster image is required")
	violations.AddWithValue("title", "Heat", "A movie with this title already exists")

	require.Len(t, violations, 2)
	assert.Equal(t, "body", violations[0].Location)
	assert.Equal(t, "Heat", violations[1].Value)
}
