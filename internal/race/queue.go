package race

// WordQueue is the FIFO of target words. The head is the word to type next.
type WordQueue struct {
	words []string
}

// NewWordQueue returns a queue holding a copy of words.
func NewWordQueue(words []string) WordQueue {
	q := WordQueue{}
	q.Reset(words)
	return q
}

// Head returns the current target word.
func (q *WordQueue) Head() (string, bool) {
	if len(q.words) == 0 {
		return "", false
	}
	return q.words[0], true
}

// Len returns the number of queued words.
func (q *WordQueue) Len() int {
	return len(q.words)
}

// Advance drops the head and appends next to the tail.
func (q *WordQueue) Advance(next string) {
	if len(q.words) > 0 {
		q.words = q.words[1:]
	}
	q.words = append(q.words, next)
}

// Reset replaces the queue contents.
func (q *WordQueue) Reset(words []string) {
	q.words = append(make([]string, 0, len(words)), words...)
}

// Words returns a copy of the queued words in order.
func (q *WordQueue) Words() []string {
	out := make([]string, len(q.words))
	copy(out, q.words)
	return out
}
