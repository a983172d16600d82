// Package linkedlist provides a singly linked node and Floyd cycle detection.
package linkedlist
