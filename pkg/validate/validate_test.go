package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campushub/circulation-service/internal/model"
	"github.com/campushub/circulation-service/pkg/validate"
)

func TestCustomValidator(t *testing.T) {
	v := validate.NewCustomValidator()

	require.NoError(t, v.Validate(model.CreateBookRequest{
		Title:  "Operating Systems",
		Author: "Tanenbaum",
		Copies: 1,
	}))

	require.Error(t, v.Validate(model.CreateBookRequest{
		Author: "Tanenbaum",
		Copies: 1,
	}), "title is required")

	require.Error(t, v.Validate(model.CreateBookRequest{
		Title:  "Operating Systems",
		Author: "Tanenbaum",
		Copies: 0,
	}), "at least one copy")

	require.Error(t, v.Validate(model.LendRequest{
		StudentID: "stu-a",
	}), "either bookUid or uniqueCode")
}
