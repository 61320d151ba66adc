package template

import (
	"fmt"

	"github.com/scarff-dev/scarff/pkg/models"
)

// Builtin returns the compiled-in template set. Matchers are chosen so that
// no two built-ins tie on any resolvable target: each specific template
// constrains language, kind, and framework (or language and kind for
// framework-less kinds), and starter-minimal is the all-wildcard fallback.
func Builtin() []Template {
	return []Template{
		rustCLI(),
		rustWorker(),
		rustBackendAxum(),
		pythonBackendFastAPI(),
		pythonFullstackDjango(),
		typescriptFrontendReact(),
		typescriptBackendExpress(),
		typescriptFullstackNextJS(),
		starterMinimal(),
	}
}

// MustBuiltinCatalog builds a catalog preloaded with every built-in
// template. It panics on an invalid built-in, which is a programming error.
func MustBuiltinCatalog() *Catalog {
	c := NewCatalog(nil)
	for _, tpl := range Builtin() {
		if _, err := c.Insert(tpl); err != nil {
			panic(fmt.Sprintf("invalid built-in template %s: %v", tpl.ID, err))
		}
	}
	return c
}

func rustCLI() Template {
	return Template{
		ID: ID{Name: "rust-cli", Version: "1.0.0"},
		Matcher: Matcher{
			Language: models.LanguageRust,
			Kind:     models.KindCLI,
		},
		Meta: Metadata{
			Name:        "Rust CLI",
			Description: "Command-line application with a layered src layout",
			Author:      "scarff",
			Tags:        []string{"rust", "cli"},
		},
		Tree: Tree{Nodes: []Node{
			FileSpec{
				Path: "Cargo.toml",
				Content: Parameterized(`[package]
name = "{{PROJECT_NAME_KEBAB}}"
version = "0.1.0"
edition = "2021"

[dependencies]
clap = { version = "4", features = ["derive"] }
anyhow = "1"
`),
				Permissions: DefaultPermissions(),
			},
			DirSpec{Path: "src"},
			FileSpec{
				Path: "src/main.rs",
				Content: Parameterized(`use clap::Parser;

#[derive(Parser)]
#[command(name = "{{PROJECT_NAME_KEBAB}}", version)]
struct Cli {
    /// Name to greet
    #[arg(default_value = "world")]
    name: String,
}

fn main() -> anyhow::Result<()> {
    let cli = Cli::parse();
    println!("hello, {}!", cli.name);
    Ok(())
}
`),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path:        ".gitignore",
				Content:     Literal("/target\n"),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path: "README.md",
				Content: Parameterized(`# {{PROJECT_NAME}}

A command-line tool. Build with ` + "`cargo build`" + `, run with ` + "`cargo run`" + `.
`),
				Permissions: DefaultPermissions(),
			},
		}},
	}
}

func rustWorker() Template {
	return Template{
		ID: ID{Name: "rust-worker", Version: "1.0.0"},
		Matcher: Matcher{
			Language: models.LanguageRust,
			Kind:     models.KindWorker,
		},
		Meta: Metadata{
			Name:        "Rust Worker",
			Description: "Long-running background worker on tokio",
			Author:      "scarff",
			Tags:        []string{"rust", "worker"},
		},
		Tree: Tree{Nodes: []Node{
			FileSpec{
				Path: "Cargo.toml",
				Content: Parameterized(`[package]
name = "{{PROJECT_NAME_KEBAB}}"
version = "0.1.0"
edition = "2021"

[dependencies]
tokio = { version = "1", features = ["full"] }
anyhow = "1"
`),
				Permissions: DefaultPermissions(),
			},
			DirSpec{Path: "src"},
			FileSpec{
				Path: "src/main.rs",
				Content: Parameterized(`use std::time::Duration;

#[tokio::main]
async fn main() -> anyhow::Result<()> {
    println!("{{PROJECT_NAME_KEBAB}} worker starting");
    loop {
        tokio::time::sleep(Duration::from_secs(5)).await;
        println!("tick");
    }
}
`),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path:        ".gitignore",
				Content:     Literal("/target\n"),
				Permissions: DefaultPermissions(),
			},
		}},
	}
}

func rustBackendAxum() Template {
	return Template{
		ID: ID{Name: "rust-backend-axum", Version: "1.0.0"},
		Matcher: Matcher{
			Language:  models.LanguageRust,
			Kind:      models.KindWebBackend,
			Framework: models.FrameworkAxum,
		},
		Meta: Metadata{
			Name:        "Rust Backend (axum)",
			Description: "HTTP API server on axum with a layered src layout",
			Author:      "scarff",
			Tags:        []string{"rust", "web-backend", "axum"},
		},
		Tree: Tree{Nodes: []Node{
			FileSpec{
				Path: "Cargo.toml",
				Content: Parameterized(`[package]
name = "{{PROJECT_NAME_KEBAB}}"
version = "0.1.0"
edition = "2021"

[dependencies]
axum = "0.7"
tokio = { version = "1", features = ["full"] }
serde = { version = "1", features = ["derive"] }
`),
				Permissions: DefaultPermissions(),
			},
			DirSpec{Path: "src"},
			DirSpec{Path: "src/routes"},
			FileSpec{
				Path: "src/main.rs",
				Content: Parameterized(`mod routes;

use axum::{routing::get, Router};

#[tokio::main]
async fn main() {
    let app = Router::new().route("/health", get(routes::health));
    let listener = tokio::net::TcpListener::bind("0.0.0.0:8080").await.unwrap();
    println!("{{PROJECT_NAME_KEBAB}} listening on :8080");
    axum::serve(listener, app).await.unwrap();
}
`),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path: "src/routes/mod.rs",
				Content: Literal(`pub async fn health() -> &'static str {
    "ok"
}
`),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path:        ".gitignore",
				Content:     Literal("/target\n"),
				Permissions: DefaultPermissions(),
			},
		}},
	}
}

func pythonBackendFastAPI() Template {
	return Template{
		ID: ID{Name: "python-backend-fastapi", Version: "1.0.0"},
		Matcher: Matcher{
			Language:  models.LanguagePython,
			Kind:      models.KindWebBackend,
			Framework: models.FrameworkFastAPI,
		},
		Meta: Metadata{
			Name:        "Python Backend (FastAPI)",
			Description: "HTTP API server on FastAPI with a layered app layout",
			Author:      "scarff",
			Tags:        []string{"python", "web-backend", "fastapi"},
		},
		Tree: Tree{Nodes: []Node{
			FileSpec{
				Path: "pyproject.toml",
				Content: Parameterized(`[project]
name = "{{PROJECT_NAME_KEBAB}}"
version = "0.1.0"
dependencies = ["fastapi", "uvicorn[standard]"]
`),
				Permissions: DefaultPermissions(),
			},
			DirSpec{Path: "app"},
			FileSpec{
				Path:        "app/__init__.py",
				Content:     Literal(""),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path: "app/main.py",
				Content: Parameterized(`from fastapi import FastAPI

app = FastAPI(title="{{PROJECT_NAME}}")


@app.get("/health")
def health() -> dict[str, str]:
    return {"status": "ok"}
`),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path:        ".gitignore",
				Content:     Literal("__pycache__/\n.venv/\n"),
				Permissions: DefaultPermissions(),
			},
		}},
	}
}

func pythonFullstackDjango() Template {
	return Template{
		ID: ID{Name: "python-fullstack-django", Version: "1.0.0"},
		Matcher: Matcher{
			Language:  models.LanguagePython,
			Kind:      models.KindFullstack,
			Framework: models.FrameworkDjango,
		},
		Meta: Metadata{
			Name:        "Python Fullstack (Django)",
			Description: "Django project in its conventional MVC layout",
			Author:      "scarff",
			Tags:        []string{"python", "fullstack", "django"},
		},
		Tree: Tree{Nodes: []Node{
			FileSpec{
				Path: "pyproject.toml",
				Content: Parameterized(`[project]
name = "{{PROJECT_NAME_KEBAB}}"
version = "0.1.0"
dependencies = ["django"]
`),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path: "manage.py",
				Content: Parameterized(`#!/usr/bin/env python
import os
import sys

if __name__ == "__main__":
    os.environ.setdefault("DJANGO_SETTINGS_MODULE", "{{PROJECT_NAME_SNAKE}}.settings")
    from django.core.management import execute_from_command_line

    execute_from_command_line(sys.argv)
`),
				Permissions: Permissions{Readable: true, Writable: true, Executable: true},
			},
			DirSpec{Path: "{{PROJECT_NAME_SNAKE}}"},
			FileSpec{
				Path:        "{{PROJECT_NAME_SNAKE}}/__init__.py",
				Content:     Literal(""),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path: "{{PROJECT_NAME_SNAKE}}/settings.py",
				Content: Parameterized(`SECRET_KEY = "change-me"
DEBUG = True
ROOT_URLCONF = "{{PROJECT_NAME_SNAKE}}.urls"
ALLOWED_HOSTS: list[str] = []
INSTALLED_APPS = [
    "django.contrib.contenttypes",
    "django.contrib.staticfiles",
]
STATIC_URL = "static/"
`),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path: "{{PROJECT_NAME_SNAKE}}/urls.py",
				Content: Literal(`from django.urls import path

urlpatterns: list = [
]
`),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path:        ".gitignore",
				Content:     Literal("__pycache__/\ndb.sqlite3\n"),
				Permissions: DefaultPermissions(),
			},
		}},
	}
}

func typescriptFrontendReact() Template {
	return Template{
		ID: ID{Name: "typescript-frontend-react", Version: "1.0.0"},
		Matcher: Matcher{
			Language:  models.LanguageTypeScript,
			Kind:      models.KindWebFrontend,
			Framework: models.FrameworkReact,
		},
		Meta: Metadata{
			Name:        "TypeScript Frontend (React)",
			Description: "React single-page app on Vite",
			Author:      "scarff",
			Tags:        []string{"typescript", "web-frontend", "react"},
		},
		Tree: Tree{Nodes: []Node{
			FileSpec{
				Path: "package.json",
				Content: Parameterized(`{
  "name": "{{PROJECT_NAME_KEBAB}}",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "vite",
    "build": "tsc && vite build"
  },
  "dependencies": {
    "react": "^18.3.0",
    "react-dom": "^18.3.0"
  },
  "devDependencies": {
    "@vitejs/plugin-react": "^4.3.0",
    "typescript": "^5.5.0",
    "vite": "^5.4.0"
  }
}
`),
				Permissions: DefaultPermissions(),
			},
			DirSpec{Path: "src"},
			FileSpec{
				Path: "src/App.tsx",
				Content: Parameterized(`export default function App() {
  return <h1>{{PROJECT_NAME}}</h1>;
}
`),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path: "src/main.tsx",
				Content: Literal(`import { createRoot } from "react-dom/client";
import App from "./App";

createRoot(document.getElementById("root")!).render(<App />);
`),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path: "index.html",
				Content: Parameterized(`<!doctype html>
<html>
  <head>
    <title>{{PROJECT_NAME}}</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.tsx"></script>
  </body>
</html>
`),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path:        ".gitignore",
				Content:     Literal("node_modules/\ndist/\n"),
				Permissions: DefaultPermissions(),
			},
		}},
	}
}

func typescriptBackendExpress() Template {
	return Template{
		ID: ID{Name: "typescript-backend-express", Version: "1.0.0"},
		Matcher: Matcher{
			Language:  models.LanguageTypeScript,
			Kind:      models.KindWebBackend,
			Framework: models.FrameworkExpress,
		},
		Meta: Metadata{
			Name:        "TypeScript Backend (Express)",
			Description: "HTTP API server on Express",
			Author:      "scarff",
			Tags:        []string{"typescript", "web-backend", "express"},
		},
		Tree: Tree{Nodes: []Node{
			FileSpec{
				Path: "package.json",
				Content: Parameterized(`{
  "name": "{{PROJECT_NAME_KEBAB}}",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "tsx watch src/server.ts"
  },
  "dependencies": {
    "express": "^4.19.0"
  },
  "devDependencies": {
    "@types/express": "^4.17.0",
    "tsx": "^4.16.0",
    "typescript": "^5.5.0"
  }
}
`),
				Permissions: DefaultPermissions(),
			},
			DirSpec{Path: "src"},
			FileSpec{
				Path: "src/server.ts",
				Content: Parameterized(`import express from "express";

const app = express();

app.get("/health", (_req, res) => {
  res.json({ status: "ok" });
});

app.listen(8080, () => {
  console.log("{{PROJECT_NAME_KEBAB}} listening on :8080");
});
`),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path:        ".gitignore",
				Content:     Literal("node_modules/\ndist/\n"),
				Permissions: DefaultPermissions(),
			},
		}},
	}
}

func typescriptFullstackNextJS() Template {
	return Template{
		ID: ID{Name: "typescript-fullstack-nextjs", Version: "1.0.0"},
		Matcher: Matcher{
			Language:  models.LanguageTypeScript,
			Kind:      models.KindFullstack,
			Framework: models.FrameworkNextJS,
		},
		Meta: Metadata{
			Name:        "TypeScript Fullstack (Next.js)",
			Description: "Next.js application with a pages layout",
			Author:      "scarff",
			Tags:        []string{"typescript", "fullstack", "nextjs"},
		},
		Tree: Tree{Nodes: []Node{
			FileSpec{
				Path: "package.json",
				Content: Parameterized(`{
  "name": "{{PROJECT_NAME_KEBAB}}",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "next dev",
    "build": "next build"
  },
  "dependencies": {
    "next": "^14.2.0",
    "react": "^18.3.0",
    "react-dom": "^18.3.0"
  },
  "devDependencies": {
    "typescript": "^5.5.0"
  }
}
`),
				Permissions: DefaultPermissions(),
			},
			DirSpec{Path: "pages"},
			FileSpec{
				Path: "pages/index.tsx",
				Content: Parameterized(`export default function Home() {
  return <main>{{PROJECT_NAME}}</main>;
}
`),
				Permissions: DefaultPermissions(),
			},
			FileSpec{
				Path:        ".gitignore",
				Content:     Literal("node_modules/\n.next/\n"),
				Permissions: DefaultPermissions(),
			},
		}},
	}
}

func starterMinimal() Template {
	return Template{
		ID:      ID{Name: "starter-minimal", Version: "1.0.0"},
		Matcher: Matcher{},
		Meta: Metadata{
			Name:        "Minimal Starter",
			Description: "Bare project skeleton for targets without a dedicated template",
			Author:      "scarff",
			Tags:        []string{"starter"},
		},
		Tree: Tree{Nodes: []Node{
			FileSpec{
				Path: "README.md",
				Content: Parameterized(`# {{PROJECT_NAME}}

Scaffolded in {{YEAR}}. Add your sources under src/.
`),
				Permissions: DefaultPermissions(),
			},
			DirSpec{Path: "src"},
			FileSpec{
				Path:        ".gitignore",
				Content:     Literal(""),
				Permissions: DefaultPermissions(),
			},
		}},
	}
}
