package generateimage

import "github.com/google/uuid"

// TaskIDGenerator - Runware taskUUID 생성기
type TaskIDGenerator interface {
	NewTaskID() string
}

// TaskIDFunc adapts a function to TaskIDGenerator.
type TaskIDFunc func() string

func (f TaskIDFunc) NewTaskID() string {
	return f()
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewTaskID() string {
	return uuid.New().String()
}
