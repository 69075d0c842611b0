package facade

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"xcodeengine/internal/telemetry"
)

// subjects the engine service listens on: one legacy subject kept
// wire-compatible with the teacher's compiler-service consumers, two new
// subjects exposing the full session/placement surface.
const (
	SubjectLegacyCompile  = "compiler.execute.request"
	SubjectSandboxExecute = "sandbox.execute.request"
	SubjectSandboxCleanup = "sandbox.cleanup.request"
)

// Subscribe registers every façade subject on nc, logging through log.
func Subscribe(nc *nats.Conn, svc *Service, log *telemetry.Component) error {
	if _, err := nc.Subscribe(SubjectLegacyCompile, legacyCompileHandler(nc, svc, log)); err != nil {
		return err
	}
	if _, err := nc.Subscribe(SubjectSandboxExecute, sandboxExecuteHandler(nc, svc, log)); err != nil {
		return err
	}
	if _, err := nc.Subscribe(SubjectSandboxCleanup, sandboxCleanupHandler(nc, svc, log)); err != nil {
		return err
	}
	return nil
}

func legacyCompileHandler(nc *nats.Conn, svc *Service, log *telemetry.Component) nats.MsgHandler {
	return func(msg *nats.Msg) {
		var req LegacyCompileRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			log.Warn("legacy compile: bad request", map[string]any{"err": err.Error()})
			return
		}

		res, err := svc.Compile(req)
		if err != nil {
			log.Error("legacy compile failed", err, nil)
			return
		}

		body, err := json.Marshal(res)
		if err != nil {
			log.Error("legacy compile: marshal response", err, nil)
			return
		}
		_ = nc.Publish(msg.Reply, body)
	}
}

func sandboxExecuteHandler(nc *nats.Conn, svc *Service, log *telemetry.Component) nats.MsgHandler {
	return func(msg *nats.Msg) {
		var req SandboxExecuteRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			log.Warn("sandbox execute: bad request", map[string]any{"err": err.Error()})
			return
		}

		res := svc.ExecuteSandbox(req)
		body, err := json.Marshal(res)
		if err != nil {
			log.Error("sandbox execute: marshal response", err, nil)
			return
		}
		_ = nc.Publish(msg.Reply, body)
	}
}

func sandboxCleanupHandler(nc *nats.Conn, svc *Service, log *telemetry.Component) nats.MsgHandler {
	return func(msg *nats.Msg) {
		var req SandboxCleanupRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			log.Warn("sandbox cleanup: bad request", map[string]any{"err": err.Error()})
			return
		}

		res := svc.Cleanup(req)
		body, err := json.Marshal(res)
		if err != nil {
			log.Error("sandbox cleanup: marshal response", err, nil)
			return
		}
		_ = nc.Publish(msg.Reply, body)
	}
}
