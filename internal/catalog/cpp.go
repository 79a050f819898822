package catalog

import "github.com/klytics/refcat/internal/report"

// Column sets shared by the C++ functions catalog sheets.
var (
	algorithmColumns = []string{
		"Function", "Header", "Category", "Time_Complexity", "Space_Complexity",
		"Arguments", "Arg_Explanation", "Return_Type", "Description",
		"When_To_Use", "When_NOT_To_Use", "Real_World_Freq", "DSA_LeetCode_Freq",
		"Example", "Notes", "Since_Version", "Related",
	}
	methodColumns = []string{
		"Container", "Method", "Category", "Time_Complexity", "Space_Complexity",
		"Arguments", "Arg_Explanation", "Return_Type", "Description",
		"When_To_Use", "When_NOT_To_Use", "Real_World_Freq", "DSA_LeetCode_Freq",
		"Example", "Notes", "Since_Version", "Related",
	}
	otherContainerColumns = []string{
		"Container", "Key_Methods", "Use_Case",
		"vs_vector", "vs_list", "vs_set", "vs_map", "Notes",
		"Real_World_Freq", "DSA_LeetCode_Freq",
	}
)

// Functions returns the C++ STL functions and algorithms catalog with its
// original per-sheet colors.
func Functions() *Catalog {
	style := report.DefaultStyle()
	style.HeaderColors = map[string]string{
		"STL Algorithms":   "4472C4",
		"Vector Methods":   "70AD47",
		"Map Methods":      "FFC000",
		"Set Methods":      "5B9BD5",
		"Other Containers": "A5A5A5",
	}

	return &Catalog{
		Name:          "functions",
		DefaultOutput: "cpp_dsa_functions_catalog.xlsx",
		Style:         style,
		Workbook: &report.Workbook{
			Tables: []report.Table{
				{Name: "STL Algorithms", Columns: algorithmColumns, Records: stlAlgorithms},
				{Name: "Vector Methods", Columns: methodColumns, Records: vectorMethods},
				{Name: "Map Methods", Columns: methodColumns, Records: mapMethods},
				{Name: "Set Methods", Columns: methodColumns, Records: setMethods},
				{Name: "Other Containers", Columns: otherContainerColumns, Records: otherContainers},
			},
		},
	}
}

var stlAlgorithms = []report.Record{
	{
		"Function": "std::all_of", "Header": "<algorithm>", "Category": "Non-modifying",
		"Time_Complexity": "O(n)", "Space_Complexity": "O(1)",
		"Arguments":       "InputIt first, InputIt last, UnaryPredicate p",
		"Arg_Explanation": "first, last: input range; p: unary predicate function",
		"Return_Type":     "bool",
		"Description":     "Checks if all elements satisfy predicate",
		"When_To_Use":     "Validate all elements meet condition; early termination on first false",
		"When_NOT_To_Use": "Need count of matches; checking empty ranges",
		"Real_World_Freq": 5, "DSA_LeetCode_Freq": 8,
		"Example":       "bool all_pos = std::all_of(v.begin(), v.end(), [](int x){ return x > 0; });",
		"Notes":         "Returns true for empty range; short-circuits",
		"Since_Version": "C++11", "Related": "any_of, none_of",
	},
	{
		"Function": "std::any_of", "Header": "<algorithm>", "Category": "Non-modifying",
		"Time_Complexity": "O(n)", "Space_Complexity": "O(1)",
		"Arguments":       "InputIt first, InputIt last, UnaryPredicate p",
		"Arg_Explanation": "first, last: input range; p: unary predicate function",
		"Return_Type":     "bool",
		"Description":     "Checks if at least one element satisfies predicate",
		"When_To_Use":     "Existence check; early termination on first match",
		"When_NOT_To_Use": "Need all matches; get iterator to match (use find_if)",
		"Real_World_Freq": 6, "DSA_LeetCode_Freq": 8,
		"Example":       "bool has_even = std::any_of(v.begin(), v.end(), [](int x){ return x % 2 == 0; });",
		"Notes":         "Returns false for empty range; short-circuits",
		"Since_Version": "C++11", "Related": "all_of, none_of, find_if",
	},
	{
		"Function": "std::find", "Header": "<algorithm>", "Category": "Non-modifying",
		"Time_Complexity": "O(n)", "Space_Complexity": "O(1)",
		"Arguments":       "InputIt first, InputIt last, const T& value",
		"Arg_Explanation": "first, last: input range; value: value to search for",
		"Return_Type":     "InputIt",
		"Description":     "Finds first element equal to value",
		"When_To_Use":     "Linear search in unsorted range; need iterator to match",
		"When_NOT_To_Use": "Sorted range (use binary_search/lower_bound); associative containers (use member find)",
		"Real_World_Freq": 9, "DSA_LeetCode_Freq": 9,
		"Example":       "auto it = std::find(v.begin(), v.end(), 42);",
		"Notes":         "Returns last if not found",
		"Since_Version": "C++98", "Related": "find_if, count, search",
	},
	{
		"Function": "std::count", "Header": "<algorithm>", "Category": "Non-modifying",
		"Time_Complexity": "O(n)", "Space_Complexity": "O(1)",
		"Arguments":       "InputIt first, InputIt last, const T& value",
		"Arg_Explanation": "first, last: input range; value: value to count",
		"Return_Type":     "ptrdiff_t",
		"Description":     "Counts elements equal to value",
		"When_To_Use":     "Frequency of a single value; occurrence checks",
		"When_NOT_To_Use": "Many distinct values (use a hash map instead)",
		"Real_World_Freq": 7, "DSA_LeetCode_Freq": 8,
		"Example":       "auto n = std::count(v.begin(), v.end(), 0);",
		"Notes":         "Full scan; no early exit",
		"Since_Version": "C++98", "Related": "count_if, find",
	},
	{
		"Function": "std::sort", "Header": "<algorithm>", "Category": "Sorting",
		"Time_Complexity": "O(n log n)", "Space_Complexity": "O(log n)",
		"Arguments":       "RandomIt first, RandomIt last, Compare comp (optional)",
		"Arg_Explanation": "first, last: range to sort; comp: comparison function",
		"Return_Type":     "void",
		"Description":     "Sorts range in ascending order (unstable)",
		"When_To_Use":     "General-purpose sorting; custom comparators",
		"When_NOT_To_Use": "Equal elements must keep order (use stable_sort); non-random-access iterators",
		"Real_World_Freq": 10, "DSA_LeetCode_Freq": 10,
		"Example":       "std::sort(v.begin(), v.end(), std::greater<int>());",
		"Notes":         "Introsort; not stable",
		"Since_Version": "C++98", "Related": "stable_sort, partial_sort, nth_element",
	},
	{
		"Function": "std::stable_sort", "Header": "<algorithm>", "Category": "Sorting",
		"Time_Complexity": "O(n log n)", "Space_Complexity": "O(n)",
		"Arguments":       "RandomIt first, RandomIt last, Compare comp (optional)",
		"Arg_Explanation": "first, last: range to sort; comp: comparison function",
		"Return_Type":     "void",
		"Description":     "Sorts range keeping the order of equal elements",
		"When_To_Use":     "Multi-key sorting; relative order of ties matters",
		"When_NOT_To_Use": "Order of equal elements irrelevant (sort is faster)",
		"Real_World_Freq": 6, "DSA_LeetCode_Freq": 5,
		"Example":       "std::stable_sort(people.begin(), people.end(), by_last_name);",
		"Notes":         "Merge sort; allocates extra memory when available",
		"Since_Version": "C++98", "Related": "sort",
	},
	{
		"Function": "std::binary_search", "Header": "<algorithm>", "Category": "Binary Search",
		"Time_Complexity": "O(log n)", "Space_Complexity": "O(1)",
		"Arguments":       "ForwardIt first, ForwardIt last, const T& value",
		"Arg_Explanation": "first, last: sorted range; value: value to look up",
		"Return_Type":     "bool",
		"Description":     "Checks if value exists in a sorted range",
		"When_To_Use":     "Existence check in sorted data",
		"When_NOT_To_Use": "Need position of match (use lower_bound); unsorted data",
		"Real_World_Freq": 7, "DSA_LeetCode_Freq": 9,
		"Example":       "bool found = std::binary_search(v.begin(), v.end(), 42);",
		"Notes":         "Range must be sorted; returns bool only",
		"Since_Version": "C++98", "Related": "lower_bound, upper_bound, equal_range",
	},
	{
		"Function": "std::lower_bound", "Header": "<algorithm>", "Category": "Binary Search",
		"Time_Complexity": "O(log n)", "Space_Complexity": "O(1)",
		"Arguments":       "ForwardIt first, ForwardIt last, const T& value",
		"Arg_Explanation": "first, last: sorted range; value: boundary value",
		"Return_Type":     "ForwardIt",
		"Description":     "First element not less than value in sorted range",
		"When_To_Use":     "Insertion points; range queries; successor search",
		"When_NOT_To_Use": "Unsorted data; plain existence check (binary_search is clearer)",
		"Real_World_Freq": 7, "DSA_LeetCode_Freq": 10,
		"Example":       "auto it = std::lower_bound(v.begin(), v.end(), 42);",
		"Notes":         "Cornerstone of DSA binary-search patterns",
		"Since_Version": "C++98", "Related": "upper_bound, binary_search",
	},
	{
		"Function": "std::reverse", "Header": "<algorithm>", "Category": "Modifying",
		"Time_Complexity": "O(n)", "Space_Complexity": "O(1)",
		"Arguments":       "BidirIt first, BidirIt last",
		"Arg_Explanation": "first, last: range to reverse",
		"Return_Type":     "void",
		"Description":     "Reverses order of elements in range",
		"When_To_Use":     "In-place reversal; two-pointer patterns",
		"When_NOT_To_Use": "Need a reversed copy (use reverse_copy)",
		"Real_World_Freq": 7, "DSA_LeetCode_Freq": 9,
		"Example":       "std::reverse(v.begin(), v.end());",
		"Notes":         "Swaps from both ends inward",
		"Since_Version": "C++98", "Related": "reverse_copy, rotate",
	},
	{
		"Function": "std::unique", "Header": "<algorithm>", "Category": "Modifying",
		"Time_Complexity": "O(n)", "Space_Complexity": "O(1)",
		"Arguments":       "ForwardIt first, ForwardIt last",
		"Arg_Explanation": "first, last: range to deduplicate",
		"Return_Type":     "ForwardIt",
		"Description":     "Removes consecutive duplicates, returns new logical end",
		"When_To_Use":     "Dedup after sort; erase-remove idiom",
		"When_NOT_To_Use": "Non-adjacent duplicates without sorting first",
		"Real_World_Freq": 6, "DSA_LeetCode_Freq": 7,
		"Example":       "v.erase(std::unique(v.begin(), v.end()), v.end());",
		"Notes":         "Does not shrink the container; pair with erase",
		"Since_Version": "C++98", "Related": "sort, remove",
	},
	{
		"Function": "std::max_element", "Header": "<algorithm>", "Category": "Min/Max",
		"Time_Complexity": "O(n)", "Space_Complexity": "O(1)",
		"Arguments":       "ForwardIt first, ForwardIt last, Compare comp (optional)",
		"Arg_Explanation": "first, last: input range; comp: comparison function",
		"Return_Type":     "ForwardIt",
		"Description":     "Iterator to largest element in range",
		"When_To_Use":     "Single max scan; argmax via distance from begin",
		"When_NOT_To_Use": "Repeated max queries (use a heap or multiset)",
		"Real_World_Freq": 8, "DSA_LeetCode_Freq": 9,
		"Example":       "auto it = std::max_element(v.begin(), v.end());",
		"Notes":         "Returns first of equal maxima; last for empty range",
		"Since_Version": "C++98", "Related": "min_element, minmax_element",
	},
	{
		"Function": "std::accumulate", "Header": "<numeric>", "Category": "Numeric",
		"Time_Complexity": "O(n)", "Space_Complexity": "O(1)",
		"Arguments":       "InputIt first, InputIt last, T init, BinaryOp op (optional)",
		"Arg_Explanation": "first, last: input range; init: starting value; op: fold operation",
		"Return_Type":     "T",
		"Description":     "Folds range into a single value (sum by default)",
		"When_To_Use":     "Sums, products, general left folds",
		"When_NOT_To_Use": "Parallel reduction (use reduce); watch init type for overflow",
		"Real_World_Freq": 8, "DSA_LeetCode_Freq": 9,
		"Example":       "long long sum = std::accumulate(v.begin(), v.end(), 0LL);",
		"Notes":         "Init type drives the accumulator type; 0 vs 0LL matters",
		"Since_Version": "C++98", "Related": "reduce, partial_sum, inner_product",
	},
}

var vectorMethods = []report.Record{
	{
		"Container": "vector", "Method": "operator[]", "Category": "Element Access",
		"Time_Complexity": "O(1)", "Space_Complexity": "O(1)",
		"Arguments":       "size_t pos",
		"Arg_Explanation": "pos: index of element",
		"Return_Type":     "T&",
		"Description":     "Access element at index (no bounds checking)",
		"When_To_Use":     "Fast access; index guaranteed valid",
		"When_NOT_To_Use": "Need bounds checking (use at()); unknown index validity",
		"Real_World_Freq": 10, "DSA_LeetCode_Freq": 10,
		"Example":       "int val = v[5];",
		"Notes":         "Most common access; undefined behavior if out of bounds",
		"Since_Version": "C++98", "Related": "at, front, back",
	},
	{
		"Container": "vector", "Method": "at", "Category": "Element Access",
		"Time_Complexity": "O(1)", "Space_Complexity": "O(1)",
		"Arguments":       "size_t pos",
		"Arg_Explanation": "pos: index of element",
		"Return_Type":     "T&",
		"Description":     "Access element with bounds checking (throws if invalid)",
		"When_To_Use":     "Need safety; untrusted indices",
		"When_NOT_To_Use": "Performance critical; index guaranteed valid",
		"Real_World_Freq": 6, "DSA_LeetCode_Freq": 4,
		"Example":       "try { int val = v.at(5); } catch(std::out_of_range& e) {}",
		"Notes":         "Throws out_of_range exception; safer than []",
		"Since_Version": "C++98", "Related": "operator[]",
	},
	{
		"Container": "vector", "Method": "push_back", "Category": "Modifiers",
		"Time_Complexity": "Amortized O(1)", "Space_Complexity": "O(1)",
		"Arguments":       "const T& value",
		"Arg_Explanation": "value: element to append",
		"Return_Type":     "void",
		"Description":     "Appends element at the end",
		"When_To_Use":     "Building vectors incrementally",
		"When_NOT_To_Use": "Constructing in place (use emplace_back); known size (use reserve first)",
		"Real_World_Freq": 10, "DSA_LeetCode_Freq": 10,
		"Example":       "v.push_back(42);",
		"Notes":         "May reallocate and invalidate iterators",
		"Since_Version": "C++98", "Related": "emplace_back, pop_back",
	},
	{
		"Container": "vector", "Method": "emplace_back", "Category": "Modifiers",
		"Time_Complexity": "Amortized O(1)", "Space_Complexity": "O(1)",
		"Arguments":       "Args&&... args",
		"Arg_Explanation": "args: constructor arguments for the new element",
		"Return_Type":     "T& (since C++17)",
		"Description":     "Constructs element in place at the end",
		"When_To_Use":     "Avoid copies of complex types",
		"When_NOT_To_Use": "Plain scalars (push_back reads clearer)",
		"Real_World_Freq": 8, "DSA_LeetCode_Freq": 7,
		"Example":       "v.emplace_back(x, y);",
		"Notes":         "Forwards arguments directly to the constructor",
		"Since_Version": "C++11", "Related": "push_back",
	},
	{
		"Container": "vector", "Method": "pop_back", "Category": "Modifiers",
		"Time_Complexity": "O(1)", "Space_Complexity": "O(1)",
		"Arguments":       "none",
		"Arg_Explanation": "",
		"Return_Type":     "void",
		"Description":     "Removes the last element",
		"When_To_Use":     "Stack-style usage on a vector",
		"When_NOT_To_Use": "Empty vector (undefined behavior)",
		"Real_World_Freq": 8, "DSA_LeetCode_Freq": 9,
		"Example":       "v.pop_back();",
		"Notes":         "Does not return the element",
		"Since_Version": "C++98", "Related": "push_back, back",
	},
	{
		"Container": "vector", "Method": "size", "Category": "Capacity",
		"Time_Complexity": "O(1)", "Space_Complexity": "O(1)",
		"Arguments":       "none",
		"Arg_Explanation": "",
		"Return_Type":     "size_t",
		"Description":     "Returns number of elements",
		"When_To_Use":     "Loop bounds; size checks",
		"When_NOT_To_Use": "Just checking emptiness (use empty())",
		"Real_World_Freq": 10, "DSA_LeetCode_Freq": 10,
		"Example":       "for (size_t i = 0; i < v.size(); ++i) {...}",
		"Notes":         "Unsigned; beware v.size() - 1 on empty vectors",
		"Since_Version": "C++98", "Related": "empty, capacity",
	},
	{
		"Container": "vector", "Method": "reserve", "Category": "Capacity",
		"Time_Complexity": "O(n)", "Space_Complexity": "O(n)",
		"Arguments":       "size_t new_cap",
		"Arg_Explanation": "new_cap: minimum capacity to allocate",
		"Return_Type":     "void",
		"Description":     "Pre-allocates storage without changing size",
		"When_To_Use":     "Known element count; avoid repeated reallocation",
		"When_NOT_To_Use": "Unknown final size; tiny vectors",
		"Real_World_Freq": 8, "DSA_LeetCode_Freq": 5,
		"Example":       "v.reserve(1000);",
		"Notes":         "Does not create elements; size() unchanged",
		"Since_Version": "C++98", "Related": "resize, capacity, shrink_to_fit",
	},
	{
		"Container": "vector", "Method": "erase", "Category": "Modifiers",
		"Time_Complexity": "O(n)", "Space_Complexity": "O(1)",
		"Arguments":       "iterator pos or iterator first, iterator last",
		"Arg_Explanation": "pos: element to remove, or first/last: range to remove",
		"Return_Type":     "iterator",
		"Description":     "Removes element or range, shifting the tail left",
		"When_To_Use":     "Targeted removal; erase-remove idiom",
		"When_NOT_To_Use": "Removing many scattered elements one by one (quadratic)",
		"Real_World_Freq": 8, "DSA_LeetCode_Freq": 7,
		"Example":       "v.erase(v.begin() + 2);",
		"Notes":         "Invalidates iterators at and after the erase point",
		"Since_Version": "C++98", "Related": "clear, remove, unique",
	},
}

var mapMethods = []report.Record{
	{
		"Container": "map/unordered_map", "Method": "operator[]", "Category": "Element Access",
		"Time_Complexity": "O(log n) / O(1) avg", "Space_Complexity": "O(1)",
		"Arguments":       "const Key& key",
		"Arg_Explanation": "key: key to access",
		"Return_Type":     "T&",
		"Description":     "Access or insert element with key",
		"When_To_Use":     "Access with default insert; simple syntax",
		"When_NOT_To_Use": "Don't want insertion (use find); const map",
		"Real_World_Freq": 10, "DSA_LeetCode_Freq": 10,
		"Example":       "map[key] = value; int val = map[key];",
		"Notes":         "Creates element if doesn't exist; can't use on const map",
		"Since_Version": "C++98", "Related": "at, insert, find",
	},
	{
		"Container": "map/unordered_map", "Method": "at", "Category": "Element Access",
		"Time_Complexity": "O(log n) / O(1) avg", "Space_Complexity": "O(1)",
		"Arguments":       "const Key& key",
		"Arg_Explanation": "key: key to access",
		"Return_Type":     "T&",
		"Description":     "Access element (throws if not found)",
		"When_To_Use":     "Safe access; no insertion; const maps",
		"When_NOT_To_Use": "Want default insert (use [])",
		"Real_World_Freq": 6, "DSA_LeetCode_Freq": 5,
		"Example":       "int val = map.at(key);",
		"Notes":         "Throws out_of_range; doesn't insert",
		"Since_Version": "C++11", "Related": "operator[], find",
	},
	{
		"Container": "map/unordered_map", "Method": "insert", "Category": "Modifiers",
		"Time_Complexity": "O(log n) / O(1) avg", "Space_Complexity": "O(1)",
		"Arguments":       "const value_type& value",
		"Arg_Explanation": "value: pair<Key,Value> to insert",
		"Return_Type":     "pair<iterator, bool>",
		"Description":     "Inserts element if key doesn't exist",
		"When_To_Use":     "Check if inserted; no overwrite",
		"When_NOT_To_Use": "Want to overwrite (use [] or insert_or_assign)",
		"Real_World_Freq": 8, "DSA_LeetCode_Freq": 8,
		"Example":       "auto [it, inserted] = map.insert({key, value});",
		"Notes":         "Returns pair: iterator and whether inserted",
		"Since_Version": "C++98", "Related": "operator[], emplace",
	},
	{
		"Container": "map/unordered_map", "Method": "erase", "Category": "Modifiers",
		"Time_Complexity": "O(log n) / O(1) avg", "Space_Complexity": "O(1)",
		"Arguments":       "const Key& key or iterator pos",
		"Arg_Explanation": "key: key to remove or pos: iterator to element",
		"Return_Type":     "size_t or iterator",
		"Description":     "Removes element by key or iterator",
		"When_To_Use":     "Remove elements",
		"When_NOT_To_Use": "Clearing all (use clear)",
		"Real_World_Freq": 8, "DSA_LeetCode_Freq": 9,
		"Example":       "map.erase(key); map.erase(it);",
		"Notes":         "By key returns count removed (0 or 1)",
		"Since_Version": "C++98", "Related": "clear",
	},
	{
		"Container": "map/unordered_map", "Method": "find", "Category": "Lookup",
		"Time_Complexity": "O(log n) / O(1) avg", "Space_Complexity": "O(1)",
		"Arguments":       "const Key& key",
		"Arg_Explanation": "key: key to find",
		"Return_Type":     "iterator",
		"Description":     "Finds element by key",
		"When_To_Use":     "Check existence; get iterator; no insertion",
		"When_NOT_To_Use": "Want default value (use [])",
		"Real_World_Freq": 9, "DSA_LeetCode_Freq": 10,
		"Example":       "auto it = map.find(key); if (it != map.end()) {...}",
		"Notes":         "Essential for checking existence; returns end() if not found",
		"Since_Version": "C++98", "Related": "count, contains",
	},
	{
		"Container": "map/unordered_map", "Method": "contains", "Category": "Lookup",
		"Time_Complexity": "O(log n) / O(1) avg", "Space_Complexity": "O(1)",
		"Arguments":       "const Key& key",
		"Arg_Explanation": "key: key to check",
		"Return_Type":     "bool",
		"Description":     "Checks if key exists",
		"When_To_Use":     "Simple existence check; modern C++",
		"When_NOT_To_Use": "Pre-C++20 (use count or find)",
		"Real_World_Freq": 8, "DSA_LeetCode_Freq": 9,
		"Example":       "if (map.contains(key)) {...}",
		"Notes":         "Added C++20; clearer than count",
		"Since_Version": "C++20", "Related": "count, find",
	},
	{
		"Container": "map/unordered_map", "Method": "size", "Category": "Capacity",
		"Time_Complexity": "O(1)", "Space_Complexity": "O(1)",
		"Arguments":       "none",
		"Arg_Explanation": "",
		"Return_Type":     "size_t",
		"Description":     "Returns number of elements",
		"When_To_Use":     "Get size; check emptiness",
		"When_NOT_To_Use": "Just checking empty (use empty())",
		"Real_World_Freq": 9, "DSA_LeetCode_Freq": 9,
		"Example":       "size_t n = map.size();",
		"Notes":         "Constant time",
		"Since_Version": "C++98", "Related": "empty",
	},
}

var setMethods = []report.Record{
	{
		"Container": "set/unordered_set", "Method": "insert", "Category": "Modifiers",
		"Time_Complexity": "O(log n) / O(1) avg", "Space_Complexity": "O(1)",
		"Arguments":       "const T& value",
		"Arg_Explanation": "value: value to insert",
		"Return_Type":     "pair<iterator, bool>",
		"Description":     "Inserts element if not present",
		"When_To_Use":     "Add unique elements",
		"When_NOT_To_Use": "Duplicates needed (use multiset)",
		"Real_World_Freq": 9, "DSA_LeetCode_Freq": 10,
		"Example":       "auto [it, inserted] = set.insert(value);",
		"Notes":         "Returns pair: iterator and whether inserted",
		"Since_Version": "C++98", "Related": "emplace, erase",
	},
	{
		"Container": "set/unordered_set", "Method": "erase", "Category": "Modifiers",
		"Time_Complexity": "O(log n) / O(1) avg", "Space_Complexity": "O(1)",
		"Arguments":       "const T& value or iterator pos",
		"Arg_Explanation": "value: value to remove or pos: iterator",
		"Return_Type":     "size_t or iterator",
		"Description":     "Removes element",
		"When_To_Use":     "Remove elements",
		"When_NOT_To_Use": "Clear all (use clear)",
		"Real_World_Freq": 8, "DSA_LeetCode_Freq": 9,
		"Example":       "set.erase(value);",
		"Notes":         "By value returns count removed",
		"Since_Version": "C++98", "Related": "insert, clear",
	},
	{
		"Container": "set/unordered_set", "Method": "find", "Category": "Lookup",
		"Time_Complexity": "O(log n) / O(1) avg", "Space_Complexity": "O(1)",
		"Arguments":       "const T& value",
		"Arg_Explanation": "value: value to find",
		"Return_Type":     "iterator",
		"Description":     "Finds element",
		"When_To_Use":     "Check existence with iterator",
		"When_NOT_To_Use": "Just bool (use count or contains)",
		"Real_World_Freq": 9, "DSA_LeetCode_Freq": 10,
		"Example":       "auto it = set.find(value); if (it != set.end()) {...}",
		"Notes":         "Returns end() if not found",
		"Since_Version": "C++98", "Related": "count, contains",
	},
	{
		"Container": "set/unordered_set", "Method": "contains", "Category": "Lookup",
		"Time_Complexity": "O(log n) / O(1) avg", "Space_Complexity": "O(1)",
		"Arguments":       "const T& value",
		"Arg_Explanation": "value: value to check",
		"Return_Type":     "bool",
		"Description":     "Checks if value exists",
		"When_To_Use":     "Simple existence check; modern C++",
		"When_NOT_To_Use": "Pre-C++20 (use count or find)",
		"Real_World_Freq": 8, "DSA_LeetCode_Freq": 10,
		"Example":       "if (set.contains(value)) {...}",
		"Notes":         "Added C++20; very useful",
		"Since_Version": "C++20", "Related": "count, find",
	},
	{
		"Container": "set", "Method": "lower_bound", "Category": "Lookup",
		"Time_Complexity": "O(log n)", "Space_Complexity": "O(1)",
		"Arguments":       "const T& value",
		"Arg_Explanation": "value: value to find",
		"Return_Type":     "iterator",
		"Description":     "First element >= value",
		"When_To_Use":     "Range queries; ordered operations",
		"When_NOT_To_Use": "unordered_set (no ordering)",
		"Real_World_Freq": 6, "DSA_LeetCode_Freq": 8,
		"Example":       "auto it = set.lower_bound(value);",
		"Notes":         "Only for ordered set; very useful in DSA",
		"Since_Version": "C++98", "Related": "upper_bound, equal_range",
	},
	{
		"Container": "set", "Method": "upper_bound", "Category": "Lookup",
		"Time_Complexity": "O(log n)", "Space_Complexity": "O(1)",
		"Arguments":       "const T& value",
		"Arg_Explanation": "value: value to find",
		"Return_Type":     "iterator",
		"Description":     "First element > value",
		"When_To_Use":     "Range queries; ordered operations",
		"When_NOT_To_Use": "unordered_set (no ordering)",
		"Real_World_Freq": 5, "DSA_LeetCode_Freq": 8,
		"Example":       "auto it = set.upper_bound(value);",
		"Notes":         "Only for ordered set",
		"Since_Version": "C++98", "Related": "lower_bound",
	},
}

// otherContainers is a sparse sheet: the comparison column varies per
// container, so records legitimately leave most of the vs_* fields absent.
var otherContainers = []report.Record{
	{"Container": "deque", "Key_Methods": "push_front, pop_front, push_back, pop_back, operator[], at", "Use_Case": "Double-ended operations; both ends efficient", "vs_vector": "Better for front operations; slightly slower random access", "Real_World_Freq": 6, "DSA_LeetCode_Freq": 7},
	{"Container": "list", "Key_Methods": "push_front, push_back, insert, erase, splice, sort", "Use_Case": "Frequent insertions/deletions at known positions", "vs_vector": "No random access; O(1) insert/erase; poor cache locality", "Real_World_Freq": 4, "DSA_LeetCode_Freq": 3},
	{"Container": "forward_list", "Key_Methods": "push_front, insert_after, erase_after", "Use_Case": "Memory-constrained singly-linked list", "vs_list": "Half memory of list; no backward traversal", "Real_World_Freq": 2, "DSA_LeetCode_Freq": 2},
	{"Container": "stack", "Key_Methods": "push, pop, top, empty, size", "Use_Case": "LIFO operations; DFS, expression evaluation", "Notes": "Adapter (default: deque); no iterators", "Real_World_Freq": 8, "DSA_LeetCode_Freq": 9},
	{"Container": "queue", "Key_Methods": "push, pop, front, back, empty, size", "Use_Case": "FIFO operations; BFS, task queues", "Notes": "Adapter (default: deque); no iterators", "Real_World_Freq": 7, "DSA_LeetCode_Freq": 9},
	{"Container": "priority_queue", "Key_Methods": "push, pop, top, empty, size", "Use_Case": "Heap operations; Dijkstra, scheduling, top-k", "Notes": "Max heap by default; no iterators; adapter over vector", "Real_World_Freq": 7, "DSA_LeetCode_Freq": 10},
	{"Container": "array", "Key_Methods": "operator[], at, front, back, fill, size", "Use_Case": "Fixed-size array with STL interface", "vs_vector": "Fixed size; stack allocated; no dynamic growth", "Real_World_Freq": 6, "DSA_LeetCode_Freq": 5},
	{"Container": "multiset", "Key_Methods": "insert, erase, count, find, lower_bound, upper_bound", "Use_Case": "Sorted collection with duplicates", "vs_set": "Allows duplicates; count can be > 1", "Real_World_Freq": 4, "DSA_LeetCode_Freq": 6},
	{"Container": "multimap", "Key_Methods": "insert, erase, count, find, equal_range", "Use_Case": "Key-value with duplicate keys", "vs_map": "Multiple values per key", "Real_World_Freq": 3, "DSA_LeetCode_Freq": 4},
}
