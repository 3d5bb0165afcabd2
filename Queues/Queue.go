// Package Queues holds the FIFO containers used by the tree traversals.
package Queues

// Queue is a first in first out container.
type Queue[T any] interface {
	//Push item to the back.
	Push(item T)
	//Pop the front item. The error is an *EmptyQueueError when there's nothing to pop.
	Pop() (T, error)
	//Peek at the front item without removing it. Zero value when empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable ring buffer.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the buffer to roughly the number of items held.
	Shrink()
	//Clear all items, keeping the buffer.
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
