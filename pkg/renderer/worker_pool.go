package renderer

import (
	"image"
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	TaskID int // For deterministic ordering
	Bounds image.Rectangle
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering. Tiles are disjoint, so the
// workers share the frame buffer without locks.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup

	tracer      *Tracer
	camera      *Camera
	scene       Scene
	frameBuffer *FrameBuffer
}

// NewWorkerPool creates a worker pool with the specified number of
// workers; numWorkers <= 0 means one worker per CPU. numTasks must be at
// least the number of tasks that will be submitted: both queues are
// buffered for all of them so that submitting every task up front and
// draining every result afterward never blocks.
func NewWorkerPool(tracer *Tracer, camera *Camera, scene Scene, frameBuffer *FrameBuffer, numWorkers, numTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numTasks < 1 {
		numTasks = 1
	}

	return &WorkerPool{
		taskQueue:   make(chan TileTask, numTasks),
		resultQueue: make(chan TileResult, numTasks),
		numWorkers:  numWorkers,
		tracer:      tracer,
		camera:      camera,
		scene:       scene,
		frameBuffer: frameBuffer,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop signals that no more tasks are coming and waits for the workers
// to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()
	for task := range wp.taskQueue {
		stats := wp.tracer.renderBounds(wp.camera, wp.scene, wp.frameBuffer, task.Bounds)
		wp.resultQueue <- TileResult{TaskID: task.TaskID, Stats: stats}
	}
}

// splitIntoTiles partitions a width x height frame into disjoint tiles of
// at most tileSize x tileSize pixels
func splitIntoTiles(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)))
		}
	}
	return tiles
}
