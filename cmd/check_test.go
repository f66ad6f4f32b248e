package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"incflat.dev/pkg/incflat/internal/domain"
	m "incflat.dev/pkg/incflat/internal/model"
)

func TestCheckCmd_PassesRootAndExpected(t *testing.T) {
	cmd, mockWorkflow := newTestCommand(t, newCheckCmd())

	mockWorkflow.On("Check", mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Root == m.Path("a.cpp") &&
			args.Expected == m.Path("a.flat.cpp") &&
			assertSearchPaths(args.SearchPaths, "include1", "include2")
	})).Return(nil)

	cmd.SetArgs([]string{"check", "-I", "include1", "-I", "include2", "a.cpp", "a.flat.cpp"})
	require.NoError(t, cmd.Execute())
}

func TestCheckCmd_OutOfDate(t *testing.T) {
	cmd, mockWorkflow := newTestCommand(t, newCheckCmd())

	mockWorkflow.On("Check", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: a.flat.cpp", domain.ErrOutOfDate))

	cmd.SetArgs([]string{"check", "a.cpp", "a.flat.cpp"})
	require.ErrorIs(t, cmd.Execute(), domain.ErrOutOfDate)
}

func TestCheckCmd_NeedsTwoArgs(t *testing.T) {
	cmd, _ := newTestCommand(t, newCheckCmd())

	cmd.SetArgs([]string{"check", "a.cpp"})
	require.Error(t, cmd.Execute())
}
