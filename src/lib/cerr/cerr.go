package cerr

import (
	"errors"
	"fmt"
)

var _ error = ContextualError{}
var _ interface{ Unwrap() error } = ContextualError{}

type Context struct {
	ContextFields map[string]interface{}
	cause         error
}

type ContextualError struct {
	Context Context
	Message string
}

func Field(key string, value interface{}) Context {
	return Context{}.Field(key, value)
}

func Wrap(err error) Context {
	return Context{}.Wrap(err)
}

func Error(message string) error {
	return Context{}.Error(message)
}

func (c Context) Field(key string, value interface{}) Context {
	fields := make(map[string]interface{}, len(c.ContextFields)+1)
	for k, v := range c.ContextFields {
		fields[k] = v
	}
	fields[key] = value

	return Context{
		ContextFields: fields,
		cause:         c.cause,
	}
}

func (c Context) Wrap(err error) Context {
	c.cause = err
	return c
}

func (c Context) Error(message string) error {
	return ContextualError{
		Context: c,
		Message: message,
	}
}

func (c ContextualError) Error() string {
	if c.Context.cause == nil {
		return c.Message
	}

	return fmt.Sprintf("%s: %s", c.Message, c.Context.cause.Error())
}

func (c ContextualError) Unwrap() error {
	return c.Context.cause
}

// Fields merges the fields of every contextual error in the chain,
// outer errors winning on key collisions
func (c ContextualError) Fields() map[string]interface{} {
	fields := map[string]interface{}{}

	var inner ContextualError
	if errors.As(c.Context.cause, &inner) {
		for k, v := range inner.Fields() {
			fields[k] = v
		}
	}

	for k, v := range c.Context.ContextFields {
		fields[k] = v
	}

	return fields
}
