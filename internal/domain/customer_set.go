package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// CustomerSet is an insertion-ordered mapping from customer number to record.
// The full directory and every query result are CustomerSets; iteration
// follows the order in which the backing dataset listed the customers.
//
// A set is built by a single goroutine and must not be modified once it is
// shared. Records are shared between the directory and query results and
// are read-only.
type CustomerSet struct {
	ids  []string
	byID map[string]*Customer
}

func NewCustomerSet(capacity int) *CustomerSet {
	return &CustomerSet{
		ids:  make([]string, 0, capacity),
		byID: make(map[string]*Customer, capacity),
	}
}

// Put stores c under c.ID. A repeated ID keeps its original position and
// takes the new record.
func (s *CustomerSet) Put(c *Customer) {
	if _, ok := s.byID[c.ID]; !ok {
		s.ids = append(s.ids, c.ID)
	}
	s.byID[c.ID] = c
}

func (s *CustomerSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// Get returns the record for id, or false when absent.
func (s *CustomerSet) Get(id string) (*Customer, bool) {
	if s == nil {
		return nil, false
	}
	c, ok := s.byID[id]
	return c, ok
}

// IDs returns the customer numbers in order.
func (s *CustomerSet) IDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// All yields (id, record) pairs in order.
func (s *CustomerSet) All() iter.Seq2[string, *Customer] {
	return func(yield func(string, *Customer) bool) {
		if s == nil {
			return
		}
		for _, id := range s.ids {
			if !yield(id, s.byID[id]) {
				return
			}
		}
	}
}

// Filter returns a new set holding the records keep accepts, in order.
func (s *CustomerSet) Filter(keep func(*Customer) bool) *CustomerSet {
	out := NewCustomerSet(0)
	for _, c := range s.All() {
		if keep(c) {
			out.Put(c)
		}
	}
	return out
}

// MarshalJSON encodes the set as a JSON object in dataset order, the same
// shape the dataset is read from.
func (s *CustomerSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for id, c := range s.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++

		key, err := json.Marshal(id)
		if err != nil {
			return nil, fmt.Errorf("marshal customer set: key %q: %w", id, err)
		}
		val, err := json.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("marshal customer set: customer %q: %w", id, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
