package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	adhoc "MaskOutlineServer/Adhoc"
	backend "MaskOutlineServer/gRPC"
	iface "MaskOutlineServer/interface"
	"MaskOutlineServer/logger"
	"MaskOutlineServer/monitor"
	"MaskOutlineServer/outline"
	"MaskOutlineServer/source"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"gopkg.in/yaml.v3"
)

const (
	IDLE = 0x1001
	BUSY = 0x1002
)

type configStruct struct {
	HTTPPort          int     `yaml:"HTTPPort"`
	RPCPort           int     `yaml:"RPCPort"`
	MonitorPort       int     `yaml:"MonitorPort"`
	WorkersNum        int     `yaml:"workersNum"`
	InstanceClass     string  `yaml:"instanceClass"`
	UseRegServer      bool    `yaml:"UseRegServer"`
	RegServerPort     int     `yaml:"RegServerPort"`
	RegServerHost     string  `yaml:"RegServerHost"`
	Threshold         float64 `yaml:"threshold"`
	CurveType         string  `yaml:"curveType"`
	SimplifyTolerance float64 `yaml:"simplifyTolerance"`
	OverlapThreshold  float64 `yaml:"overlapThreshold"`
	KeepUnpaired      bool    `yaml:"keepUnpaired"`
}

type EngineParam struct {
	Threshold         float64 `json:"threshold"`
	CurveType         string  `json:"curveType"`
	SimplifyTolerance float64 `json:"simplifyTolerance"`
	OverlapThreshold  float64 `json:"overlapThreshold"`
	KeepUnpaired      bool    `json:"keepUnpaired"`
	Description       string  `json:"description"`
}

type worker struct {
	mu          sync.Mutex
	State       int
	Description string
	engine      *outline.Engine
}

type instance struct {
	id          string
	worker      *worker
	lastActive  time.Time
	conn        *websocket.Conn
	closeOnce   sync.Once
	cancelTimer chan struct{}
	cancelOnce  sync.Once
}

var (
	seqMu     sync.RWMutex
	workers   = map[string]*worker{}
	sessionMu sync.RWMutex
	sessions  = map[string]*instance{}
	upgrader  = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	idleTimeout = 1000 * time.Millisecond
)

func optionsFromParam(param EngineParam) iface.Options {
	return iface.Options{
		Threshold:         param.Threshold,
		CurveType:         iface.CurveType(param.CurveType),
		SimplifyTolerance: param.SimplifyTolerance,
		OverlapThreshold:  param.OverlapThreshold,
		KeepUnpaired:      param.KeepUnpaired,
	}
}

func addWorker(description string, param EngineParam) (string, error) {
	engine := &outline.Engine{}
	engine.New()
	if err := engine.Configure(optionsFromParam(param)); err != nil {
		return "", err
	}
	w := &worker{
		State:       IDLE,
		Description: description,
		engine:      engine,
	}
	id := uuid.New().String()
	seqMu.Lock()
	workers[id] = w
	seqMu.Unlock()
	return id, nil
}

func allocInstance() (string, string, error) {
	seqMu.RLock()
	var chosenID string
	var chosen *worker
	for id, w := range workers {
		w.mu.Lock()
		if w.State == IDLE {
			w.State = BUSY
			chosenID = id
			chosen = w
			w.mu.Unlock()
			break
		}
		w.mu.Unlock()
	}
	seqMu.RUnlock()
	if chosen == nil {
		return "", "", errors.New("no available workers")
	}

	sessionID := uuid.New().String()
	inst := &instance{
		id:          sessionID,
		worker:      chosen,
		lastActive:  time.Now(),
		cancelTimer: make(chan struct{}),
	}

	sessionMu.Lock()
	sessions[sessionID] = inst
	sessionMu.Unlock()

	return sessionID, chosenID, nil
}

func releaseInstance(sessionID string) bool {
	sessionMu.Lock()
	inst, ok := sessions[sessionID]
	if ok {
		delete(sessions, sessionID)
	}
	sessionMu.Unlock()
	if !ok {
		return false
	}

	inst.closeOnce.Do(func() {
		if inst.conn != nil {
			_ = inst.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "1000 ms not active, released"))
			_ = inst.conn.Close()
		}
	})
	inst.cancelOnce.Do(func() {
		close(inst.cancelTimer)
	})
	inst.worker.mu.Lock()
	inst.worker.State = IDLE
	inst.worker.mu.Unlock()
	return true
}

func startIdleMonitor(inst *instance) {
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-inst.cancelTimer:
				return
			case <-ticker.C:
				if time.Since(inst.lastActive) > idleTimeout {
					_ = releaseInstance(inst.id)
					fmt.Println("IdleMonitor timed out")
					return
				}
			}
		}
	}()
}

// frameToMask accepts either a JSON MaskSpec or a base64 image string so
// the websocket protocol can carry masks from both the segmentation
// model (raw probabilities) and debug tooling (encoded PNGs).
func frameToMask(msg []byte) (iface.MaskSpec, error) {
	trimmed := strings.TrimSpace(string(msg))
	if strings.HasPrefix(trimmed, "{") {
		var spec iface.MaskSpec
		if err := json.Unmarshal([]byte(trimmed), &spec); err != nil {
			return iface.MaskSpec{}, err
		}
		return spec, nil
	}
	return source.Base64ToMask(trimmed, 0)
}

func GetOutboundIP() (string, error) {
	// dialing 8.8.8.8 only resolves the local egress IP from the
	// routing table, no packet actually has to go out
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "", err
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)

	return localAddr.IP.String(), nil
}

func setupRouter(defaults EngineParam) *gin.Engine {
	r := gin.Default()
	r.Use(func(c *gin.Context) {
		monitor.HTTPTotal.Inc()
		c.Next()
	})
	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/getpid", func(c *gin.Context) {
		c.String(http.StatusOK, "%d", os.Getpid())
	})
	r.POST("/api/outline", func(c *gin.Context) {
		var req struct {
			Mask    iface.MaskSpec `json:"mask"`
			ImgData string         `json:"imgData"`
			Channel int            `json:"channel"`
			EngineParam
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		param := req.EngineParam
		if param.Threshold == 0 {
			param.Threshold = defaults.Threshold
		}
		if param.CurveType == "" {
			param.CurveType = defaults.CurveType
		}
		if param.SimplifyTolerance == 0 {
			param.SimplifyTolerance = defaults.SimplifyTolerance
		}
		if param.OverlapThreshold == 0 {
			param.OverlapThreshold = defaults.OverlapThreshold
		}
		mask := req.Mask
		if len(mask.Data) == 0 && req.ImgData != "" {
			var err error
			mask, err = source.Base64ToMask(req.ImgData, req.Channel)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		result, err := outline.Outline(mask, optionsFromParam(param))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		monitor.FramesTotal.Inc()
		monitor.ContoursTotal.Add(float64(result.Contours))
		c.JSON(http.StatusOK, gin.H{"data": result})
	})
	r.POST("/api/engines/init/:count", func(c *gin.Context) {
		countStr := c.Param("count")
		var count int
		_, err := fmt.Sscanf(countStr, "%d", &count)
		if err != nil || count <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid count"})
			return
		}

		var initParam EngineParam
		if err := c.ShouldBindJSON(&initParam); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if initParam.Threshold == 0 {
			initParam.Threshold = defaults.Threshold
		}
		if initParam.CurveType == "" {
			initParam.CurveType = defaults.CurveType
		}
		if initParam.SimplifyTolerance == 0 {
			initParam.SimplifyTolerance = defaults.SimplifyTolerance
		}
		if initParam.OverlapThreshold == 0 {
			initParam.OverlapThreshold = defaults.OverlapThreshold
		}

		fmt.Println("Creating", count, "engines with param:", initParam)
		ids := make([]string, count)
		for i := 0; i < count; i++ {
			id, err := addWorker(initParam.Description, initParam)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ids[i] = id
		}

		c.JSON(http.StatusOK, gin.H{"data": ids})
	})
	r.GET("/api/engines/check/:id", func(c *gin.Context) {
		id := c.Param("id")
		seqMu.RLock()
		w, exists := workers[id]
		seqMu.RUnlock()
		if !exists {
			c.JSON(404, gin.H{"error": "Engine not found"})
			return
		}
		w.mu.Lock()
		state := w.State
		description := w.Description
		cfg := w.engine.CheckConfig()
		w.mu.Unlock()
		retData := map[string]any{
			"state":             state,
			"description":       description,
			"threshold":         cfg.Threshold,
			"curveType":         cfg.CurveType,
			"simplifyTolerance": cfg.SimplifyTolerance,
			"overlapThreshold":  cfg.OverlapThreshold,
			"keepUnpaired":      cfg.KeepUnpaired,
		}
		c.JSON(200, gin.H{"data": retData})
	})
	r.POST("/api/engines/alloc", func(c *gin.Context) {
		sessionID, workerID, err := allocInstance()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All engines are busy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"sessionID": sessionID,
			"workerID":  workerID,
			"wsURL":     fmt.Sprintf("ws://%s/ws/%s", c.Request.Host, sessionID),
			"timeoutMs": idleTimeout.Milliseconds(),
		})
	})
	r.POST("/api/engines/:sessionID/release", func(c *gin.Context) {
		sessionID := c.Param("sessionID")
		if !releaseInstance(sessionID) {
			c.JSON(404, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(200, gin.H{"data": "Session released"})
	})
	r.GET("/ws/:sessionID", func(c *gin.Context) {
		sessionID := c.Param("sessionID")
		// check the session exists before upgrading
		sessionMu.RLock()
		inst, exists := sessions[sessionID]
		sessionMu.RUnlock()
		if !exists {
			c.JSON(404, gin.H{"error": "Session not found"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// upgrade failed, the response is already committed
			return
		}
		inst.conn = conn
		conn.SetReadLimit(20 * 1024 * 1024)

		startIdleMonitor(inst)
		for {
			mt, msg, err := conn.ReadMessage()
			if err != nil {
				// client went away, hand the worker back
				releaseInstance(sessionID)
				fmt.Println("Connection closed for session:", sessionID, "error:", err)
				return
			}
			inst.lastActive = time.Now()
			switch mt {
			case websocket.TextMessage:
				mask, err := frameToMask(msg)
				if err != nil {
					_ = conn.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf("invalid mask: %v", err)))
					continue
				}
				result := inst.worker.engine.Process(mask)
				if !result.Success {
					_ = conn.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf("outline error: %v", result.Data)))
					continue
				}
				if path, ok := result.Data.(iface.PathResult); ok {
					monitor.FramesTotal.Inc()
					monitor.ContoursTotal.Add(float64(path.Contours))
				}
				_ = conn.WriteJSON(result.Data)
			default:
				_ = conn.WriteMessage(websocket.TextMessage, []byte("unsupported message type"))
			}
		}
	})
	return r
}

func main() {
	ip, err := GetOutboundIP()
	if err != nil {
		fmt.Println("Failed to get outbound IP:", err)
		return
	} else {
		fmt.Println("Outbound IP:", ip)
	}
	var wg sync.WaitGroup
	err = logger.InitProduction()
	if err != nil {
		return
	}
	fmt.Println(strings.Repeat("#", 64))
	CPUNum := runtime.NumCPU()
	runtime.GOMAXPROCS(CPUNum)
	fmt.Printf("CPU Cores: %d\n", CPUNum)
	configData, err := os.ReadFile("config.yaml")
	if err != nil {
		fmt.Println("Failed to read config file:", err)
		return
	}
	config := configStruct{}
	err = yaml.Unmarshal(configData, &config)
	if err != nil {
		fmt.Println("Failed to parse config file:", err)
		return
	}
	fmt.Println(" HTTP  Port:", config.HTTPPort)
	fmt.Println(" gRPC  Port:", config.RPCPort)
	fmt.Println(" Mon   Port:", config.MonitorPort)
	fmt.Println("Configured Workers Num:", config.WorkersNum)
	fmt.Println(strings.Repeat("#", 64))
	fmt.Println("")
	if config.WorkersNum <= 0 {
		config.WorkersNum = 1
		fmt.Println(strings.Repeat("!", 64))
		fmt.Println("Invalid workersNum in config, defaulting to 1")
		fmt.Println(strings.Repeat("!", 64))
	} else if config.WorkersNum > CPUNum {
		fmt.Println(strings.Repeat("!", 64))
		fmt.Println("Please noted that workersNum exceeds CPU cores, which may lead to performance degradation.")
		fmt.Println(strings.Repeat("!", 64))
	}
	fmt.Println("")

	defaults := EngineParam{
		Threshold:         config.Threshold,
		CurveType:         config.CurveType,
		SimplifyTolerance: config.SimplifyTolerance,
		OverlapThreshold:  config.OverlapThreshold,
		KeepUnpaired:      config.KeepUnpaired,
	}
	def := iface.DefaultOptions()
	if defaults.Threshold == 0 {
		defaults.Threshold = def.Threshold
	}
	if defaults.CurveType == "" {
		defaults.CurveType = string(def.CurveType)
	}
	if defaults.SimplifyTolerance == 0 {
		defaults.SimplifyTolerance = def.SimplifyTolerance
	}
	if defaults.OverlapThreshold == 0 {
		defaults.OverlapThreshold = def.OverlapThreshold
	}

	var InstanceClass int
	switch config.InstanceClass {
	case "Realtime":
		InstanceClass = adhoc.RealtimeInstance
	case "Batch":
		InstanceClass = adhoc.BatchInstance
	default:
		fmt.Println("Invalid instanceClass in config, defaulting to Realtime")
		InstanceClass = adhoc.RealtimeInstance
	}
	adhoc.RegServerCfg = adhoc.RegServerConfig{}
	adhoc.RegServerCfg.SetAddress(config.RegServerHost, config.RegServerPort)
	backend.JobQueue = make(chan backend.JobPackage, config.WorkersNum)
	backend.StartWorker(config.WorkersNum)
	backend.DSequences = make(map[string]backend.WorkerID)

	for i := 0; i < config.WorkersNum; i++ {
		if _, err := addWorker("Default Worker", defaults); err != nil {
			fmt.Println("Failed to create default worker:", err)
			return
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg.Add(1)
	if config.UseRegServer {
		go adhoc.SendAliveMessage(ip, config.RPCPort, InstanceClass, ctx, &wg)
	} else {
		fmt.Println("UseRegServer is set to false, skipping registration")
		wg.Done()
	}

	r := setupRouter(defaults)
	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.HTTPPort),
		Handler: r,
	}
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Println("HTTP server error:", err)
		}
	}()

	fmt.Println("Starting gRPC Server")
	server := backend.StartGRPCServer(config.RPCPort)
	go monitor.StartMon(config.MonitorPort, ctx)
	<-backend.CloseChannel
	cancel()
	server.GracefulStop()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer shutdownCancel()
	_ = httpSrv.Shutdown(shutdownCtx)
	fmt.Println("Done")
	wg.Wait()
	fmt.Println("Safely exited")
}
