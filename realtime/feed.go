package realtime

import "sync"

// Feed fans out "collection changed" signals to subscribers. Each subscriber
// runs on its own goroutine and bursts of publishes coalesce into a single
// callback.
type Feed struct {
	mu   sync.Mutex
	next int
	subs map[int]*subscription
}

type subscription struct {
	topics map[string]struct{}
	notify chan struct{}
	done   chan struct{}
}

func NewFeed() *Feed {
	return &Feed{subs: make(map[int]*subscription)}
}

// Publish signals every subscriber of topic. It never blocks.
func (f *Feed) Publish(topic string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.subs {
		if _, ok := s.topics[topic]; ok {
			s.signal()
		}
	}
}

// Subscribe calls fn once right away and again after every publish on any of
// topics, until the returned dispose func is called.
func (f *Feed) Subscribe(fn func(), topics ...string) (dispose func()) {
	s := &subscription{
		topics: make(map[string]struct{}, len(topics)),
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	for _, t := range topics {
		s.topics[t] = struct{}{}
	}

	f.mu.Lock()
	id := f.next
	f.next++
	f.subs[id] = s
	f.mu.Unlock()

	s.signal()
	go s.run(fn)

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
			close(s.done)
		})
	}
}

// Subscribers reports how many subscriptions are live.
func (f *Feed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (s *subscription) signal() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *subscription) run(fn func()) {
	for {
		select {
		case <-s.done:
			return
		case <-s.notify:
			select {
			case <-s.done:
				return
			default:
			}
			fn()
		}
	}
}
