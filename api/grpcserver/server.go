package grpcserver

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "lowmemd/api/pb"
	"lowmemd/config"
	"lowmemd/domain/pressure"
	"lowmemd/service"
)

// Server adapts the Shrinker to gRPC.
type Server struct {
	pb.UnimplementedLowMemServer
	shr *service.Shrinker
	log *zap.Logger
}

func NewServer(shr *service.Shrinker, log *zap.Logger) *Server {
	return &Server{shr: shr, log: log}
}

// -------------------- Commands --------------------

func (s *Server) SetParams(
	ctx context.Context,
	req *pb.SetParamsRequest,
) (*pb.SetParamsReply, error) {
	if req.Params == nil {
		return nil, status.Error(codes.InvalidArgument, "params required")
	}

	scores := make([]int, len(req.Params.Scores))
	for i, v := range req.Params.Scores {
		scores[i] = int(v)
	}

	p := config.Params{
		Table: pressure.Table{
			Scores:  scores,
			MinFree: req.Params.Minfree,
		},
		Cost:       int(req.Params.Cost),
		DebugLevel: int(req.Params.DebugLevel),
		FastRun:    req.Params.FastRun,
	}

	if err := s.shr.UpdateParams(p); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	s.log.Info("[gRPC] SetParams",
		zap.Ints("scores", scores),
		zap.Int64s("minfree", req.Params.Minfree))

	return &pb.SetParamsReply{Status: "ok"}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetParams(
	ctx context.Context,
	req *pb.GetParamsRequest,
) (*pb.Params, error) {
	p := s.shr.Params()

	scores := make([]int64, len(p.Table.Scores))
	for i, v := range p.Table.Scores {
		scores[i] = int64(v)
	}

	return &pb.Params{
		Scores:     scores,
		Minfree:    p.Table.MinFree,
		Cost:       int32(p.Cost),
		DebugLevel: int32(p.DebugLevel),
		FastRun:    p.FastRun,
	}, nil
}

func (s *Server) Probe(
	ctx context.Context,
	req *pb.ProbeRequest,
) (*pb.ProbeReply, error) {
	pr, err := s.shr.Probe(pressure.AllocContext{
		HighZoneIdx: int(req.HighZoneIdx),
		Background:  req.Background,
	})
	if err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}

	return &pb.ProbeReply{
		Reclaimable: pr.Reclaimable,
		OtherFree:   pr.Sample.OtherFree,
		OtherFile:   pr.Sample.OtherFile,
		MinScore:    int32(pr.MinScore),
		Fired:       pr.Fired,
	}, nil
}

func (s *Server) Stats(
	ctx context.Context,
	req *pb.StatsRequest,
) (*pb.StatsReply, error) {
	st := s.shr.Stats()

	return &pb.StatsReply{
		Kills:           st.Kills,
		LastSeq:         st.LastSeq,
		CooldownUntilNs: st.CooldownUntil.UnixNano(),
		Candidates:      int32(st.Candidates),
	}, nil
}

func (s *Server) ListCandidates(
	ctx context.Context,
	req *pb.ListCandidatesRequest,
) (*pb.ListCandidatesReply, error) {
	views := s.shr.Candidates()

	resp := &pb.ListCandidatesReply{
		Candidates: make([]*pb.Candidate, 0, len(views)),
	}
	for _, v := range views {
		resp.Candidates = append(resp.Candidates, &pb.Candidate{
			Pid:         int32(v.PID),
			Comm:        v.Comm,
			Score:       int32(v.Score),
			KernelOwned: v.KernelOwned,
			Exiting:     v.Flags.Exiting,
			DeathMarked: v.Flags.DeathMarked,
			MemReleased: v.Flags.MemReleased,
		})
	}
	return resp, nil
}
