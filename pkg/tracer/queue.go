package tracer

import "github.com/taigrr/orb/pkg/math3d"

// job is a ray waiting to be traced.
type job struct {
	ray    math3d.Ray
	pixel  int   // offset of the pixel's R byte
	weight uint8 // opacity this ray may still contribute
}

// rayQueue holds pending jobs. New jobs are always appended; pop takes
// from the head or the tail depending on the discipline.
type rayQueue struct {
	jobs       []job
	head       int
	discipline Discipline
}

func (q *rayQueue) len() int {
	return len(q.jobs) - q.head
}

func (q *rayQueue) push(j job) {
	q.jobs = append(q.jobs, j)
}

func (q *rayQueue) pop() (job, bool) {
	if q.len() == 0 {
		return job{}, false
	}

	var j job
	if q.discipline == LIFO {
		last := len(q.jobs) - 1
		j = q.jobs[last]
		q.jobs = q.jobs[:last]
	} else {
		j = q.jobs[q.head]
		q.head++
	}

	switch {
	case q.head == len(q.jobs):
		q.jobs = q.jobs[:0]
		q.head = 0
	case q.head > 4096 && q.head > len(q.jobs)/2:
		n := copy(q.jobs, q.jobs[q.head:])
		q.jobs = q.jobs[:n]
		q.head = 0
	}
	return j, true
}

func (q *rayQueue) clear() {
	q.jobs = q.jobs[:0]
	q.head = 0
}
