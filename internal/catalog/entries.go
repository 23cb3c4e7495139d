package catalog

// defaultEntries declares every expert and assistant. Order matters: the
// ranker's stable sort preserves it for equal scores.
func defaultEntries() []Entry {
	return []Entry{
		{
			ID:                "frontend-expert",
			Name:              "Frontend Expert",
			Icon:              "🎨",
			Description:       "Expert in frontend development and user interfaces",
			Category:          CategoryTechnical,
			DetectionKeywords: []string{"react", "vue", "angular", "svelte", "frontend", "css", "tailwind", "scss"},
			DetectionFiles:    []string{"*.tsx", "*.jsx", "*.vue", "angular.json", "next.config.*", "vite.config.*"},
			Specializations: []Specialization{
				{
					Name:         "React",
					Keywords:     []string{"react", "jsx", "tsx", "next.js", "nextjs", "redux", "zustand", "react-query"},
					Capabilities: []string{"Hooks patterns", "State management (Redux/Zustand)", "React Testing Library", "Performance optimization (memo, lazy)"},
					Commands:     []string{"/component", "/hook", "/test-rtl"},
				},
				{
					Name:         "Vue.js",
					Keywords:     []string{"vue", "vuex", "pinia", "nuxt", "vite"},
					Capabilities: []string{"Composition API", "Pinia/Vuex patterns", "Vue Test Utils", "Nuxt conventions"},
					Commands:     []string{"/component", "/composable", "/test-vue"},
				},
				{
					Name:         "Angular",
					Keywords:     []string{"angular", "@angular", "ngrx", "rxjs"},
					Capabilities: []string{"RxJS patterns", "NgModules vs Standalone", "Angular Testing", "Signals"},
					Commands:     []string{"/component", "/service", "/test-angular"},
				},
				{
					Name:         "Svelte",
					Keywords:     []string{"svelte", "sveltekit"},
					Capabilities: []string{"Svelte stores", "SvelteKit routing", "Svelte testing"},
					Commands:     []string{"/component", "/store"},
				},
				{
					Name:         "TypeScript",
					Keywords:     []string{"typescript", ".ts", "tsconfig"},
					Capabilities: []string{"Type definitions", "Generics", "Utility types", "Type guards"},
					Commands:     []string{"/types", "/interface"},
				},
			},
			BaseCapabilities: []Capability{
				{Name: "component-design", Description: "Reusable component design", Trigger: "component", Priority: 9},
				{Name: "state-management", Description: "State management and data flow", Trigger: "state", Priority: 8},
				{Name: "performance", Description: "Frontend performance optimization", Trigger: "slow render", Priority: 8},
				{Name: "accessibility", Description: "Accessibility (a11y) best practices", Trigger: "accessibility", Priority: 7},
				{Name: "testing", Description: "Frontend unit and integration tests", Trigger: "test", Priority: 8},
			},
		},
		{
			ID:                "backend-expert",
			Name:              "Backend Expert",
			Icon:              "⚙️",
			Description:       "Expert in backend development and APIs",
			Category:          CategoryTechnical,
			DetectionKeywords: []string{"spring", "django", "fastapi", "express", "nestjs", "api", "rest", "graphql"},
			DetectionFiles:    []string{"pom.xml", "build.gradle", "requirements.txt", "go.mod", "Cargo.toml", "package.json"},
			Specializations: []Specialization{
				{
					Name:         "Spring Boot",
					Keywords:     []string{"spring", "spring-boot", "springboot", "pom.xml", "gradle", "java", ".java"},
					Capabilities: []string{"Spring MVC/WebFlux", "JPA/Hibernate", "Spring Security", "Testing (JUnit/Mockito)"},
					Commands:     []string{"/controller", "/service", "/repository", "/test-spring"},
				},
				{
					Name:         "Django",
					Keywords:     []string{"django", "djangorestframework", "drf"},
					Capabilities: []string{"Django ORM", "DRF serializers", "Django testing", "Celery tasks"},
					Commands:     []string{"/view", "/model", "/serializer", "/test-django"},
				},
				{
					Name:         "FastAPI",
					Keywords:     []string{"fastapi", "uvicorn", "starlette"},
					Capabilities: []string{"Pydantic models", "Dependency injection", "Async patterns", "OpenAPI"},
					Commands:     []string{"/endpoint", "/schema", "/test-fastapi"},
				},
				{
					Name:         "Node.js",
					Keywords:     []string{"express", "nestjs", "koa", "node", "npm", "package.json"},
					Capabilities: []string{"Express/NestJS patterns", "Middleware", "Async/await", "Jest testing"},
					Commands:     []string{"/route", "/middleware", "/test-node"},
				},
				{
					Name:         "Go",
					Keywords:     []string{"golang", "go.mod", "go.sum", ".go"},
					Capabilities: []string{"Go idioms", "Goroutines/channels", "Go testing", "Error handling"},
					Commands:     []string{"/handler", "/test-go"},
				},
				{
					Name:         "Rust",
					Keywords:     []string{"rust", "cargo.toml", ".rs"},
					Capabilities: []string{"Ownership/borrowing", "Error handling (Result)", "Async Rust", "Testing"},
					Commands:     []string{"/impl", "/test-rust"},
				},
			},
			BaseCapabilities: []Capability{
				{Name: "api-design", Description: "REST/GraphQL API design", Trigger: "api", Priority: 9},
				{Name: "database", Description: "Database and ORM integration", Trigger: "database", Priority: 8},
				{Name: "security", Description: "Backend security (auth, validation)", Trigger: "security", Priority: 9},
				{Name: "performance", Description: "Performance optimization", Trigger: "slow", Priority: 8},
				{Name: "testing", Description: "Unit and integration tests", Trigger: "test", Priority: 8},
			},
		},
		{
			ID:                "data-expert",
			Name:              "Data Expert",
			Icon:              "🗄️",
			Description:       "Expert in databases and data management",
			Category:          CategoryTechnical,
			DetectionKeywords: []string{"postgres", "mongodb", "redis", "elasticsearch", "sql", "database", "etl"},
			DetectionFiles:    []string{"*.sql", "docker-compose.yml", "schema.prisma", "migrations/"},
			Specializations: []Specialization{
				{
					Name:         "PostgreSQL",
					Keywords:     []string{"postgres", "postgresql", "psql", "pg_"},
					Capabilities: []string{"Query optimization", "Indexing strategies", "Stored procedures", "JSONB"},
					Commands:     []string{"/query", "/index", "/explain"},
				},
				{
					Name:         "MongoDB",
					Keywords:     []string{"mongodb", "mongoose", "mongo"},
					Capabilities: []string{"Aggregation pipelines", "Schema design", "Indexing", "Transactions"},
					Commands:     []string{"/aggregate", "/schema", "/index"},
				},
				{
					Name:         "Redis",
					Keywords:     []string{"redis", "ioredis", "redis-py"},
					Capabilities: []string{"Caching patterns", "Pub/Sub", "Data structures", "Lua scripts"},
					Commands:     []string{"/cache", "/pubsub"},
				},
				{
					Name:         "Elasticsearch",
					Keywords:     []string{"elasticsearch", "elastic", "opensearch"},
					Capabilities: []string{"Query DSL", "Mappings", "Aggregations", "Performance tuning"},
					Commands:     []string{"/search", "/mapping"},
				},
				{
					Name:         "SQL",
					Keywords:     []string{"sql", "mysql", "mariadb", "sqlite", ".sql"},
					Capabilities: []string{"Query optimization", "Joins", "Indexing", "Transactions"},
					Commands:     []string{"/query", "/optimize"},
				},
			},
			BaseCapabilities: []Capability{
				{Name: "schema-design", Description: "Data schema design", Trigger: "schema", Priority: 9},
				{Name: "query-optimization", Description: "Query optimization", Trigger: "slow query", Priority: 9},
				{Name: "indexing", Description: "Indexing strategies", Trigger: "index", Priority: 8},
				{Name: "migration", Description: "Data migrations", Trigger: "migration", Priority: 7},
				{Name: "backup", Description: "Backup and restore strategies", Trigger: "backup", Priority: 7},
			},
		},
		{
			ID:                "devops-expert",
			Name:              "DevOps Expert",
			Icon:              "🚀",
			Description:       "Expert in infrastructure, CI/CD and deployment",
			Category:          CategoryTechnical,
			DetectionKeywords: []string{"docker", "kubernetes", "terraform", "ansible", "cicd", "pipeline", "helm"},
			DetectionFiles:    []string{"Dockerfile", "docker-compose.yml", "*.tf", ".github/workflows/*", "k8s/", "helm/"},
			Specializations: []Specialization{
				{
					Name:         "Docker",
					Keywords:     []string{"docker", "dockerfile", "docker-compose", "containerfile"},
					Capabilities: []string{"Multi-stage builds", "Compose orchestration", "Security best practices", "Optimization"},
					Commands:     []string{"/dockerfile", "/compose"},
				},
				{
					Name:         "Kubernetes",
					Keywords:     []string{"kubernetes", "k8s", "kubectl", "helm", "kustomize"},
					Capabilities: []string{"Deployment strategies", "Services/Ingress", "ConfigMaps/Secrets", "Helm charts"},
					Commands:     []string{"/manifest", "/helm", "/debug-k8s"},
				},
				{
					Name:         "Terraform",
					Keywords:     []string{"terraform", ".tf", "tfstate", "hcl"},
					Capabilities: []string{"Module design", "State management", "Provider patterns", "Best practices"},
					Commands:     []string{"/resource", "/module"},
				},
				{
					Name:         "CI/CD",
					Keywords:     []string{"github-actions", ".github/workflows", "gitlab-ci", "jenkins", "circleci"},
					Capabilities: []string{"Pipeline design", "Testing stages", "Deployment automation", "Security scanning"},
					Commands:     []string{"/pipeline", "/workflow"},
				},
				{
					Name:         "Ansible",
					Keywords:     []string{"ansible", "playbook", ".yml", "inventory"},
					Capabilities: []string{"Playbook design", "Roles", "Inventory management", "Vault"},
					Commands:     []string{"/playbook", "/role"},
				},
			},
			BaseCapabilities: []Capability{
				{Name: "containerization", Description: "Containerization and orchestration", Trigger: "docker", Priority: 9},
				{Name: "ci-cd", Description: "CI/CD pipelines", Trigger: "pipeline", Priority: 9},
				{Name: "infrastructure", Description: "Infrastructure as Code", Trigger: "infra", Priority: 8},
				{Name: "monitoring", Description: "Monitoring and observability", Trigger: "monitor", Priority: 8},
				{Name: "security", Description: "DevSecOps practices", Trigger: "security", Priority: 8},
			},
		},
		{
			ID:                "mobile-expert",
			Name:              "Mobile Expert",
			Icon:              "📱",
			Description:       "Expert in mobile development (iOS, Android, cross-platform)",
			Category:          CategoryTechnical,
			DetectionKeywords: []string{"ios", "android", "swift", "kotlin", "flutter", "react-native", "mobile"},
			DetectionFiles:    []string{"*.swift", "*.kt", "pubspec.yaml", "Podfile", "build.gradle"},
			Specializations: []Specialization{
				{
					Name:         "iOS/Swift",
					Keywords:     []string{"swift", "xcode", "cocoapods", "spm", ".swift", "xcodeproj"},
					Capabilities: []string{"SwiftUI/UIKit", "Combine", "Core Data", "XCTest"},
					Commands:     []string{"/view", "/viewmodel", "/test-ios"},
				},
				{
					Name:         "Android/Kotlin",
					Keywords:     []string{"kotlin", "android", "gradle", ".kt", "jetpack"},
					Capabilities: []string{"Jetpack Compose", "Coroutines/Flow", "Room", "Android testing"},
					Commands:     []string{"/composable", "/viewmodel", "/test-android"},
				},
				{
					Name:         "Flutter",
					Keywords:     []string{"flutter", "dart", "pubspec.yaml", ".dart"},
					Capabilities: []string{"Widget patterns", "State management (Bloc/Riverpod)", "Platform channels", "Testing"},
					Commands:     []string{"/widget", "/bloc", "/test-flutter"},
				},
				{
					Name:         "React Native",
					Keywords:     []string{"react-native", "expo", "metro"},
					Capabilities: []string{"Native modules", "Navigation", "State management", "Testing"},
					Commands:     []string{"/screen", "/hook", "/test-rn"},
				},
			},
			BaseCapabilities: []Capability{
				{Name: "ui-patterns", Description: "Mobile UI patterns", Trigger: "ui", Priority: 9},
				{Name: "navigation", Description: "Navigation and routing", Trigger: "navigation", Priority: 8},
				{Name: "state", Description: "Mobile state management", Trigger: "state", Priority: 8},
				{Name: "platform", Description: "Native integrations", Trigger: "native", Priority: 7},
				{Name: "testing", Description: "Mobile testing", Trigger: "test", Priority: 8},
			},
		},
		{
			ID:                "cloud-expert",
			Name:              "Cloud Expert",
			Icon:              "☁️",
			Description:       "Expert in cloud services and serverless architectures",
			Category:          CategoryTechnical,
			DetectionKeywords: []string{"aws", "gcp", "azure", "lambda", "serverless", "cloud"},
			DetectionFiles:    []string{"serverless.yml", "template.yaml", "cloudformation.yaml", "*.tf"},
			Specializations: []Specialization{
				{
					Name:         "AWS",
					Keywords:     []string{"aws", "lambda", "s3", "dynamodb", "cloudformation", "cdk", "sam"},
					Capabilities: []string{"Lambda patterns", "API Gateway", "DynamoDB design", "CloudFormation/CDK"},
					Commands:     []string{"/lambda", "/cloudformation"},
				},
				{
					Name:         "Google Cloud",
					Keywords:     []string{"gcp", "google-cloud", "cloud-functions", "firestore", "bigquery"},
					Capabilities: []string{"Cloud Functions", "Firestore", "BigQuery", "Pub/Sub"},
					Commands:     []string{"/function", "/firestore"},
				},
				{
					Name:         "Azure",
					Keywords:     []string{"azure", "azure-functions", "cosmosdb", "arm-template"},
					Capabilities: []string{"Azure Functions", "CosmosDB", "ARM templates", "Azure DevOps"},
					Commands:     []string{"/function", "/arm"},
				},
				{
					Name:         "Serverless",
					Keywords:     []string{"serverless", "serverless.yml", "netlify", "vercel"},
					Capabilities: []string{"Serverless patterns", "Cold start optimization", "Event-driven design"},
					Commands:     []string{"/function", "/serverless"},
				},
			},
			BaseCapabilities: []Capability{
				{Name: "architecture", Description: "Cloud architecture", Trigger: "architecture", Priority: 9},
				{Name: "serverless", Description: "Serverless patterns", Trigger: "serverless", Priority: 8},
				{Name: "cost", Description: "Cost optimization", Trigger: "cost", Priority: 7},
				{Name: "security", Description: "Cloud security", Trigger: "security", Priority: 9},
				{Name: "scaling", Description: "Auto-scaling and high availability", Trigger: "scale", Priority: 8},
			},
		},
		{
			ID:                "security-checker",
			Name:              "Security Checker",
			Icon:              "🔒",
			Description:       "Code security verification and compliance",
			Category:          CategoryTransversal,
			DetectionKeywords: []string{"security", "auth", "password", "token", "secret"},
			DetectionFiles:    []string{".env", "auth/", "security/", "credentials"},
			BaseCapabilities: []Capability{
				{Name: "vulnerability-scan", Description: "OWASP vulnerability detection", Trigger: "security", Priority: 10},
				{Name: "secrets-detection", Description: "Exposed secrets detection", Trigger: "secret", Priority: 10},
				{Name: "compliance-check", Description: "Compliance verification", Trigger: "compliance", Priority: 9},
				{Name: "code-review-security", Description: "Security-focused code review", Trigger: "review", Priority: 8},
				{Name: "dependency-audit", Description: "Dependency audit", Trigger: "dependency", Priority: 8},
			},
		},
		{
			ID:                "onboarding-guide",
			Name:              "Onboarding Guide",
			Icon:              "📚",
			Description:       "Helps the team ramp up on the project",
			Category:          CategoryTransversal,
			DetectionKeywords: []string{"readme", "documentation", "getting-started"},
			DetectionFiles:    []string{"README.md", "CONTRIBUTING.md", "docs/"},
			BaseCapabilities: []Capability{
				{Name: "architecture-explain", Description: "Architecture explanations", Trigger: "architecture", Priority: 9},
				{Name: "code-walkthrough", Description: "Guided code walkthroughs", Trigger: "understand", Priority: 9},
				{Name: "conventions", Description: "Convention explanations", Trigger: "convention", Priority: 8},
				{Name: "setup-guide", Description: "Setup guide", Trigger: "setup", Priority: 8},
				{Name: "faq", Description: "Answers to frequent questions", Trigger: "question", Priority: 7},
			},
		},
		{
			ID:                "doc-generator",
			Name:              "Doc Generator",
			Icon:              "📝",
			Description:       "Documentation generation and improvement",
			Category:          CategoryTransversal,
			DetectionKeywords: []string{"documentation", "readme", "api-doc"},
			DetectionFiles:    []string{"README.md", "docs/", "*.md"},
			BaseCapabilities: []Capability{
				{Name: "readme", Description: "README generation", Trigger: "readme", Priority: 9},
				{Name: "api-docs", Description: "API documentation (OpenAPI/Swagger)", Trigger: "api", Priority: 9},
				{Name: "code-comments", Description: "Code comments", Trigger: "comment", Priority: 7},
				{Name: "changelog", Description: "Changelog generation", Trigger: "changelog", Priority: 7},
				{Name: "diagrams", Description: "Diagram generation", Trigger: "diagram", Priority: 8},
			},
		},
		{
			ID:                "refactoring-advisor",
			Name:              "Refactoring Advisor",
			Icon:              "♻️",
			Description:       "Refactoring and code improvement advice",
			Category:          CategoryTransversal,
			DetectionKeywords: []string{"refactor", "legacy", "technical-debt", "cleanup"},
			BaseCapabilities: []Capability{
				{Name: "code-smells", Description: "Code smell detection", Trigger: "smell", Priority: 9},
				{Name: "patterns", Description: "Design pattern suggestions", Trigger: "pattern", Priority: 8},
				{Name: "solid", Description: "SOLID principles", Trigger: "solid", Priority: 8},
				{Name: "simplification", Description: "Code simplification", Trigger: "complex", Priority: 8},
				{Name: "modularization", Description: "Module decomposition", Trigger: "module", Priority: 7},
			},
		},
		{
			ID:                "perf-optimizer",
			Name:              "Performance Optimizer",
			Icon:              "⚡",
			Description:       "Performance optimization",
			Category:          CategoryTransversal,
			DetectionKeywords: []string{"performance", "optimization", "slow", "cache", "profiling"},
			BaseCapabilities: []Capability{
				{Name: "profiling", Description: "Performance analysis", Trigger: "slow", Priority: 9},
				{Name: "caching", Description: "Caching strategies", Trigger: "cache", Priority: 9},
				{Name: "lazy-loading", Description: "Deferred loading", Trigger: "lazy", Priority: 8},
				{Name: "memory", Description: "Memory optimization", Trigger: "memory", Priority: 8},
				{Name: "database-perf", Description: "Database performance", Trigger: "query", Priority: 8},
			},
		},
		{
			ID:                "test-advisor",
			Name:              "Test Advisor",
			Icon:              "🧪",
			Description:       "Testing strategy advice",
			Category:          CategoryTransversal,
			DetectionKeywords: []string{"test", "testing", "coverage", "tdd", "bdd"},
			DetectionFiles:    []string{"tests/", "test/", "__tests__/", "*.test.*", "*.spec.*"},
			BaseCapabilities: []Capability{
				{Name: "unit-tests", Description: "Unit tests", Trigger: "unit", Priority: 9},
				{Name: "integration-tests", Description: "Integration tests", Trigger: "integration", Priority: 8},
				{Name: "e2e-tests", Description: "End-to-end tests", Trigger: "e2e", Priority: 8},
				{Name: "mocking", Description: "Mocking strategies", Trigger: "mock", Priority: 8},
				{Name: "coverage", Description: "Coverage improvement", Trigger: "coverage", Priority: 8},
			},
		},
	}
}
