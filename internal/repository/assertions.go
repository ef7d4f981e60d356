package repository

import "github.com/devfolio/portfolio-api/internal/database/postgres"

// The postgres client backs every repository
var (
	_ SkillDataSource   = (*postgres.Client)(nil)
	_ ProjectDataSource = (*postgres.Client)(nil)
	_ BlogDataSource    = (*postgres.Client)(nil)
	_ ContactDataSource = (*postgres.Client)(nil)
	_ ProfileDataSource = (*postgres.Client)(nil)
	_ StatsDataSource   = (*postgres.Client)(nil)

	_ SkillRepositoryInterface   = (*SkillRepository)(nil)
	_ ProjectRepositoryInterface = (*ProjectRepository)(nil)
	_ BlogRepositoryInterface    = (*BlogRepository)(nil)
	_ ContactRepositoryInterface = (*ContactRepository)(nil)
	_ ProfileRepositoryInterface = (*ProfileRepository)(nil)
	_ StatsRepositoryInterface   = (*StatsRepository)(nil)
)
