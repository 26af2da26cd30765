package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"sweep.dev/pkg/sweep/internal/domain"
	domainmocks "sweep.dev/pkg/sweep/internal/domain/mocks"
	m "sweep.dev/pkg/sweep/internal/model"
)

func TestLayoutCmd_SavesToFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newLayoutCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Layout", mock.Anything, mock.MatchedBy(func(args domain.LayoutArgs) bool {
		return args.Output == m.Path("out.yaml") &&
			args.Avoid == m.Pos{Row: 2, Col: 3} &&
			args.Layout == "" &&
			args.Rows == 5 &&
			args.Mines == 4
	})).Return(nil)

	cmd.SetArgs([]string{"layout", "--rows", "5", "-m", "4", "--avoid", "2,3", "-l", "ignored.yaml", "out.yaml"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestLayoutCmd_InvalidAvoid(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newLayoutCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"layout", "--avoid", "middle", "out.yaml"})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestLayoutCmd_RequiresFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newLayoutCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"layout"})
	err := cmd.Execute()
	require.Error(t, err)
}
