package cipher

// defaultEntries is the built-in mapping for A-Z, space, and digits 0-9.
// Every entry uses a distinct book, so reference uniqueness holds by
// construction, and every reference is canonically valid under KJV
// versification.
var defaultEntries = []Entry{
	{'A', "Acts 2:38"},
	{'B', "Joshua 1:9"},
	{'C', "Colossians 3:2"},
	{'D', "Deuteronomy 6:5"},
	{'E', "Ephesians 2:8"},
	{'F', "Galatians 5:22"},
	{'G', "Genesis 1:31"},
	{'H', "Hebrews 11:1"},
	{'I', "Isaiah 40:31"},
	{'J', "James 1:17"},
	{'K', "1 Kings 19:12"},
	{'L', "Leviticus 19:18"},
	{'M', "Micah 6:8"},
	{'N', "Numbers 6:24"},
	{'O', "Obadiah 1:4"},
	{'P', "Proverbs 3:5"},
	{'Q', "Ecclesiastes 3:1"},
	{'R', "Romans 8:28"},
	{'S', "1 Samuel 16:7"},
	{'T', "1 Thessalonians 5:16"},
	{'U', "Ruth 1:16"},
	{'V', "Matthew 5:44"},
	{'W', "Revelation 21:4"},
	{'X', "Exodus 20:12"},
	{'Y', "Jeremiah 29:11"},
	{'Z', "Zephaniah 3:17"},
	{' ', "Psalms 46:10"},
	{'0', "Lamentations 3:22"},
	{'1', "John 3:16"},
	{'2', "Mark 12:30"},
	{'3', "Daniel 3:25"},
	{'4', "Joel 2:28"},
	{'5', "2 Timothy 1:7"},
	{'6', "Hosea 6:6"},
	{'7', "Luke 15:7"},
	{'8', "Nehemiah 8:10"},
	{'9', "Habakkuk 2:4"},
}

// DefaultTable returns the built-in table. It is rebuilt on each call so
// callers can never alias shared state.
func DefaultTable() *Table {
	t, err := NewTable(defaultEntries)
	if err != nil {
		// The built-in entries are validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return t
}

// DefaultEntries returns a copy of the built-in entry list.
func DefaultEntries() []Entry {
	entries := make([]Entry, len(defaultEntries))
	copy(entries, defaultEntries)
	return entries
}
