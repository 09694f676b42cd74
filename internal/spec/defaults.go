package spec

import "scaffix/internal/domain"

// Default returns the built-in generation table for the backup application's
// test tree. A fresh value is returned on every call.
func Default() Spec {
	return Spec{Categories: []CategorySpec{
		{
			Path: "unit/models",
			Classes: []domain.TestClassDescriptor{
				{
					Name: "ModelsTest",
					Includes: []string{
						"models/Repository.h", "models/BackupTask.h", "models/Schedule.h",
						"models/Snapshot.h", "models/FileInfo.h", "models/BackupResult.h",
						"models/RestoreOptions.h", "models/RepoStats.h",
					},
					Tests: []string{
						"testRepositorySerialize", "testRepositoryDeserialize",
						"testBackupTaskSerialize", "testBackupTaskDeserialize",
						"testScheduleSerialize", "testScheduleDeserialize",
						"testSnapshotSerialize", "testSnapshotDeserialize",
						"testFileInfoSerialize", "testFileInfoDeserialize",
						"testBackupResultSerialize", "testBackupResultDeserialize",
						"testRestoreOptionsSerialize", "testRestoreOptionsDeserialize",
						"testRepoStatsSerialize", "testRepoStatsDeserialize",
					},
				},
			},
		},
		{
			Path: "unit/core",
			Classes: []domain.TestClassDescriptor{
				{
					Name:     "ResticWrapperTest",
					Includes: []string{"core/ResticWrapper.h"},
					Tests: []string{
						"testResticPathValidation", "testCommandLineBuilder", "testJsonParsing",
						"testProgressSignals", "testErrorHandling", "testPasswordSecurity",
						"testAsyncExecution", "testProcessTermination",
					},
				},
				{
					Name:     "RepositoryManagerTest",
					Includes: []string{"core/RepositoryManager.h"},
					Tests: []string{
						"testCreateRepository", "testDeleteRepository", "testListRepositories",
						"testConnectRepository", "testPasswordCache", "testUpdateRepository",
						"testInvalidRepository",
					},
				},
				{
					Name:     "BackupManagerTest",
					Includes: []string{"core/BackupManager.h"},
					Tests: []string{
						"testCreateBackupTask", "testDeleteBackupTask", "testExecuteBackup",
						"testBackupHistory", "testExcludeRules", "testTagManagement",
						"testConcurrentBackups", "testBackupFailure",
					},
				},
				{
					Name:     "RestoreManagerTest",
					Includes: []string{"core/RestoreManager.h"},
					Tests: []string{
						"testBuildFileTree", "testSelectiveRestore", "testRestorePathValidation",
						"testRestoreProgress", "testRestoreRollback", "testFileSearch",
					},
				},
				{
					Name:     "SnapshotManagerTest",
					Includes: []string{"core/SnapshotManager.h"},
					Tests: []string{
						"testListSnapshots", "testSnapshotCache", "testForgetSnapshot",
						"testPruneSnapshots", "testTagFilter", "testSnapshotStats",
					},
				},
				{
					Name:     "SchedulerManagerTest",
					Includes: []string{"core/SchedulerManager.h"},
					Tests: []string{
						"testScheduleTask", "testConditionChecks", "testStartStopScheduler",
						"testTaskConflicts", "testScheduleHistory",
					},
				},
			},
		},
		{
			Path: "unit/data",
			Classes: []domain.TestClassDescriptor{
				{
					Name:     "DatabaseManagerTest",
					Includes: []string{"data/DatabaseManager.h"},
					Tests: []string{
						"testDatabaseInit", "testCRUD_Repository", "testCRUD_BackupTask",
						"testCRUD_BackupHistory", "testTransaction", "testConcurrentAccess",
						"testMigration", "testDataIntegrity",
					},
				},
				{
					Name:     "ConfigManagerTest",
					Includes: []string{"data/ConfigManager.h"},
					Tests:    []string{"testReadWriteConfig", "testDefaultValues", "testConfigValidation", "testConfigReload"},
				},
				{
					Name:     "PasswordManagerTest",
					Includes: []string{"data/PasswordManager.h"},
					Tests:    []string{"testEncryptPassword", "testDecryptPassword", "testSessionCache", "testPasswordStorage"},
				},
				{
					Name:     "CacheManagerTest",
					Includes: []string{"data/CacheManager.h"},
					Tests:    []string{"testCacheStore", "testCacheRetrieve", "testCacheExpiration", "testCacheClear"},
				},
			},
		},
		{
			Path: "ui",
			Classes: []domain.TestClassDescriptor{
				{
					Name:     "MainWindowTest",
					Includes: []string{"ui/MainWindow.h"},
					Tests: []string{
						"testWindowInit", "testPageSwitching", "testMenuActions",
						"testSystemTray", "testWindowState",
					},
				},
				{
					Name: "PagesTest",
					Includes: []string{
						"ui/pages/HomePage.h", "ui/pages/RepositoryPage.h",
						"ui/pages/BackupPage.h", "ui/pages/SnapshotPage.h",
						"ui/pages/RestorePage.h", "ui/pages/StatsPage.h",
					},
					Tests: []string{
						"testHomePageInit", "testRepositoryPageActions",
						"testBackupPageTaskList", "testSnapshotPageList",
						"testRestorePageFileTree", "testStatsPageCharts",
					},
				},
				{
					Name: "DialogsTest",
					Includes: []string{
						"ui/dialogs/ProgressDialog.h", "ui/dialogs/PasswordDialog.h",
						"ui/dialogs/SettingsDialog.h",
					},
					Tests: []string{"testProgressDialogUpdate", "testPasswordDialogInput", "testSettingsDialogSave"},
				},
			},
		},
		{
			Path: "integration",
			Classes: []domain.TestClassDescriptor{
				{
					Name:     "BackupFlowTest",
					Includes: []string{"core/RepositoryManager.h", "core/BackupManager.h"},
					Tests:    []string{"testCompleteBackupFlow", "testBackupWithExcludes"},
				},
				{
					Name:     "RestoreFlowTest",
					Includes: []string{"core/SnapshotManager.h", "core/RestoreManager.h"},
					Tests:    []string{"testCompleteRestoreFlow", "testSelectiveRestore"},
				},
				{
					Name:     "RepositoryManagementTest",
					Includes: []string{"core/RepositoryManager.h"},
					Tests:    []string{"testRepositoryLifecycle", "testRepositoryCheck"},
				},
				{
					Name:     "SchedulerTest",
					Includes: []string{"core/SchedulerManager.h", "core/BackupManager.h"},
					Tests:    []string{"testScheduledBackup", "testSchedulerConditions"},
				},
			},
		},
	}}
}
