package editors

import "editorscan/internal/fatal"

func installHints(e Editor) []string {
	switch e {
	case Atom:
		return []string{
			"Atom is no longer maintained; install the last .deb or .rpm from https://github.com/atom/atom/releases",
		}
	case VSCode:
		return []string{
			"Install the .deb or .rpm package from https://code.visualstudio.com/Download",
		}
	case VSCodeInsiders:
		return []string{
			"Install the Insiders .deb or .rpm package from https://code.visualstudio.com/insiders/",
		}
	case VSCodium:
		return []string{
			"Add the VSCodium package repository, then: sudo apt install codium",
		}
	case SublimeText:
		return []string{
			"Add the Sublime HQ package repository, then: sudo apt install sublime-text",
		}
	case Typora:
		return []string{
			"Add the Typora package repository, then: sudo apt install typora",
		}
	case SlickEdit:
		return []string{
			"Install SlickEdit Pro 2015 through 2018 into its default /opt/slickedit-pro<year> directory",
		}
	default:
		fatal.AssertNever(int(e), "no install hints for editor")
		return nil
	}
}
