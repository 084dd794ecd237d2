// SPDX-License-Identifier: Unlicense OR MIT

package glitz

import (
	"github.com/go-glitz/glitz/driver"
	"github.com/go-glitz/glitz/gl"
)

type jobState int

const (
	jobFinished jobState = iota
	jobContinueFenced
)

// executorJob is the type-erased view of an in-flight task paired with its
// result delivery.
type executorJob interface {
	progress(c *driver.Connection) jobState
}

// fencedJob pairs a fence with the job waiting behind it.
type fencedJob struct {
	fence gl.Sync
	job   executorJob
}

// fencedQueue holds jobs that reported they must wait on the GPU, each
// behind the fence that was current when they suspended. The queue is
// strictly FIFO: fences are created in queue order and the driver signals
// them in creation order, so scanning can stop at the first fence that has
// not signalled yet.
type fencedQueue struct {
	jobs []fencedJob
}

func (q *fencedQueue) empty() bool { return len(q.jobs) == 0 }

// push fences the job against the work issued so far and appends it.
func (q *fencedQueue) push(j executorJob, c *driver.Connection) {
	ctx, _ := c.Unpack()
	fence := ctx.FenceSync()
	q.jobs = append(q.jobs, fencedJob{fence: fence, job: j})
	logger().Debug("glitz: fence inserted", "pending", len(q.jobs))
}

// run progresses every job whose fence has signalled. Jobs that suspend
// again are re-fenced and moved to the back. It reports whether the queue
// is empty afterwards.
func (q *fencedQueue) run(c *driver.Connection) bool {
	ctx, _ := c.Unpack()
	for len(q.jobs) > 0 {
		front := q.jobs[0]
		if ctx.GetSyncParameteri(front.fence, gl.SYNC_STATUS) != gl.SIGNALED {
			// Fences signal in creation order, so everything behind
			// this one is unsignalled too.
			break
		}
		q.jobs = q.jobs[1:]
		ctx.DeleteSync(front.fence)
		if front.job.progress(c) == jobContinueFenced {
			fence := ctx.FenceSync()
			q.jobs = append(q.jobs, fencedJob{fence: fence, job: front.job})
			logger().Debug("glitz: task re-fenced", "pending", len(q.jobs))
		}
	}
	return len(q.jobs) == 0
}
