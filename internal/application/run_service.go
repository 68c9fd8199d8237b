package application

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/fnwatchdog/fnwatchdog/internal/domain"
	"github.com/fnwatchdog/fnwatchdog/internal/domain/watchdog"
)

// RunService orchestrates one compliance run:
// resolve config -> build engine -> check each root -> aggregate -> report -> gate.
type RunService struct {
	roots     domain.SourceRootProvider
	newEngine domain.EngineFactory
	tr        domain.Translator
	log       domain.Logger
	git       domain.GitInfo
	reporter  *Reporter
}

// NewRunService wires a RunService. git may be nil, in which case results
// carry no commit hash.
func NewRunService(
	roots domain.SourceRootProvider,
	newEngine domain.EngineFactory,
	tr domain.Translator,
	log domain.Logger,
	git domain.GitInfo,
) *RunService {
	return &RunService{
		roots:     roots,
		newEngine: newEngine,
		tr:        tr,
		log:       log,
		git:       git,
		reporter:  NewReporter(log, tr),
	}
}

// Run checks the configured source roots of the project at projectPath.
//
// A configuration mistake returns a *domain.ConfigError and an engine fault a
// *domain.ExecutionError, both with a nil result. When violations are found
// and the plan says to fail, Run returns the full result together with
// domain.ErrPolicyFailure.
func (s *RunService) Run(ctx context.Context, projectPath string, cfg domain.ProjectConfig) (*domain.RunResult, error) {
	plan, err := watchdog.Resolve(cfg, func() []string {
		if s.roots == nil {
			return nil
		}
		return s.roots.DefaultRoots(projectPath, cfg.EffectiveSourceSet())
	})
	if err != nil {
		return nil, s.translateConfigError(err)
	}

	s.reporter.ReportRoots(plan.ScanRoots)

	result := &domain.RunResult{
		Plan:       plan,
		Result:     watchdog.Aggregate(nil),
		Findings:   []domain.Finding{},
		Gate:       domain.GatePass,
		CommitHash: s.commitHash(projectPath),
	}

	if len(plan.ScanRoots) == 0 {
		s.reporter.ReportNoRoots()
		return result, nil
	}

	engine, err := s.newEngine(plan.DefinitionSources, plan.Placeholders)
	if err != nil {
		return nil, &domain.ExecutionError{
			Message: s.tr.Translate(domain.BundleErrors, domain.MsgEngineCreation),
			Err:     err,
		}
	}

	reports, err := s.scan(ctx, engine, plan)
	if err != nil {
		return nil, err
	}

	result.Result = watchdog.Aggregate(reports)
	result.Findings = result.Result.Findings()
	s.reporter.ReportFindings(result.Findings)

	result.Gate = watchdog.Decide(result.Result.HasViolations, plan.FailOnViolation)
	if result.Gate == domain.GateFail {
		return result, domain.ErrPolicyFailure
	}
	return result, nil
}

// scan checks every existing root with the shared engine. Roots are checked
// one after the other unless the plan asks for parallelism.
func (s *RunService) scan(ctx context.Context, engine domain.ConventionEngine, plan domain.ExecutionPlan) ([]domain.RootReport, error) {
	if plan.Parallelism > 1 && len(plan.ScanRoots) > 1 {
		return s.scanParallel(ctx, engine, plan)
	}

	reports := make([]domain.RootReport, 0, len(plan.ScanRoots))
	for _, root := range plan.ScanRoots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report, ok, err := s.checkRoot(engine, root)
		if err != nil {
			return nil, err
		}
		if ok {
			reports = append(reports, report)
		}
	}
	return reports, nil
}

// scanParallel checks roots concurrently. The first fault cancels the rest
// and is the error returned; reports keep the order of plan.ScanRoots.
func (s *RunService) scanParallel(ctx context.Context, engine domain.ConventionEngine, plan domain.ExecutionPlan) ([]domain.RootReport, error) {
	slots := make([]*domain.RootReport, len(plan.ScanRoots))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(plan.Parallelism)
	for i, root := range plan.ScanRoots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, ok, err := s.checkRoot(engine, root)
			if err != nil {
				return err
			}
			if ok {
				slots[i] = &report
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reports := make([]domain.RootReport, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			reports = append(reports, *r)
		}
	}
	return reports, nil
}

// checkRoot runs the engine on one root. ok is false when the root does not
// exist on disk.
func (s *RunService) checkRoot(engine domain.ConventionEngine, root string) (report domain.RootReport, ok bool, err error) {
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.RootReport{}, false, nil
		}
		return domain.RootReport{}, false, &domain.ExecutionError{
			Root:    root,
			Message: s.tr.Translate(domain.BundleErrors, domain.MsgRootInspection, root),
			Err:     err,
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return domain.RootReport{}, false, &domain.ExecutionError{
			Root:    root,
			Message: s.tr.Translate(domain.BundleErrors, domain.MsgRootInspection, root),
			Err:     err,
		}
	}

	s.log.Info(s.tr.Translate(domain.BundleLog, domain.MsgScanningRoot, abs), "root", abs)

	violations, err := engine.Check(abs)
	if err != nil {
		return domain.RootReport{}, false, &domain.ExecutionError{
			Root:    abs,
			Message: s.tr.Translate(domain.BundleErrors, domain.MsgEngineCheck, abs),
			Err:     err,
		}
	}
	if violations == nil {
		violations = domain.ViolationReport{}
	}

	return domain.RootReport{Root: abs, Violations: violations}, true, nil
}

func (s *RunService) translateConfigError(err error) error {
	var cfgErr *domain.ConfigError
	if errors.As(err, &cfgErr) && cfgErr.Kind == domain.MissingDefinitionSources {
		cfgErr.Message = s.tr.Translate(domain.BundleErrors, domain.MsgMissingDefinitionSources)
	}
	return err
}

func (s *RunService) commitHash(projectPath string) string {
	if s.git == nil || !s.git.IsGitRepo(projectPath) {
		return ""
	}
	hash, err := s.git.CommitHash(projectPath)
	if err != nil {
		return ""
	}
	return hash
}
